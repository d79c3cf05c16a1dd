package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"valentine-surprise-server/wizard"
)

// HTTPSubmitter implements wizard.Submitter against the persistence
// endpoint.
type HTTPSubmitter struct {
	Endpoint string
	Client   *http.Client
}

// Submit posts the payload once. A transport error is returned as-is; a
// non-2xx status or a body whose success flag is false is reported as
// wizard.ErrSubmissionRejected. Nothing is retried.
func (s *HTTPSubmitter) Submit(payload wizard.SubmitPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Post(s.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK || !out.Success {
		return fmt.Errorf("%w: %s", wizard.ErrSubmissionRejected, out.Error)
	}
	return nil
}
