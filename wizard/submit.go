package wizard

import (
	"errors"
	"fmt"
	"strings"

	"valentine-surprise-server/models"
	"valentine-surprise-server/utils"
)

// ErrSubmissionRejected marks a well-formed persistence response whose
// success flag was false (or a non-2xx status), as opposed to a transport
// failure.
var ErrSubmissionRejected = errors.New("submission rejected")

// Uploader stores the draft's images under the surprise id and returns the
// public URLs in the same order. Uploads happen one at a time; the first
// failure aborts the batch. Already-uploaded blobs are not rolled back.
type Uploader interface {
	Upload(surpriseID string, images []File) ([]string, error)
}

// PaymentResult is the opaque confirmation the checkout hands back after a
// successful payment. None of it is interpreted client-side.
type PaymentResult struct {
	PaymentID string
	OrderID   string
	Signature string
}

// CheckoutOptions configures one opening of the hosted payment modal.
type CheckoutOptions struct {
	Amount      int64 // smallest currency unit
	Currency    string
	Name        string
	Description string
	PrefillName string

	OnSuccess func(PaymentResult)
	OnDismiss func()
	OnError   func(error)
}

// Checkout opens the external payment flow. Exactly one of the three
// callbacks fires per Open.
type Checkout interface {
	Open(opts CheckoutOptions)
}

// Submitter delivers the assembled payload to the persistence endpoint.
// A response carrying success=false must be reported as
// ErrSubmissionRejected.
type Submitter interface {
	Submit(payload SubmitPayload) error
}

// SubmitPayload is the single request body sent after payment success.
type SubmitPayload struct {
	SurpriseID        string                 `json:"surpriseId"`
	SenderName        string                 `json:"senderName"`
	ReceiverName      string                 `json:"receiverName"`
	Message           string                 `json:"message"`
	Images            []string               `json:"images"`
	AudioURL          *string                `json:"audioUrl"`
	Reasons           []string               `json:"reasons"`
	Timeline          []models.TimelineEntry `json:"timeline"`
	RazorpayPaymentID string                 `json:"razorpayPaymentId"`
	RazorpayOrderID   string                 `json:"razorpayOrderId"`
	RazorpaySignature string                 `json:"razorpaySignature"`
}

// Coordinator drives a draft through upload, checkout and submission.
type Coordinator struct {
	Uploader  Uploader
	Checkout  Checkout
	Submitter Submitter

	Amount   int64
	Currency string

	// NewID overrides surprise id generation, for tests.
	NewID func() string
}

// Submit runs the final-step flow: re-validate, upload images in order, open
// the checkout, and on payment success send everything to the persistence
// endpoint. onDone receives the viewer URL after a successful submission.
// Submit only runs from the last step; earlier steps get an error message.
// Re-entrant calls while a submission is in flight are ignored. Every
// failure path clears the loading flag and leaves a message on the draft;
// nothing is retried automatically.
func (c *Coordinator) Submit(d *Draft, onDone func(viewerURL string)) {
	if d.loading {
		return
	}
	d.err = ""

	if d.step != StepTimeline {
		d.err = "Please complete all steps first"
		return
	}

	if strings.TrimSpace(d.SenderName) == "" ||
		strings.TrimSpace(d.ReceiverName) == "" ||
		strings.TrimSpace(d.Message) == "" {
		d.err = "Please fill in all fields"
		return
	}
	if len(d.Images) == 0 {
		d.err = "Please upload at least one image"
		return
	}

	d.loading = true

	// The id is assigned before any upload: blobs are keyed by it.
	newID := c.NewID
	if newID == nil {
		newID = utils.NewSurpriseID
	}
	surpriseID := newID()

	imageURLs, err := c.Uploader.Upload(surpriseID, d.Images)
	if err != nil {
		d.fail("Failed to upload files. Please try again.")
		return
	}

	c.Checkout.Open(CheckoutOptions{
		Amount:      c.Amount,
		Currency:    c.Currency,
		Name:        "Valentine Surprise",
		Description: "Create your personalized surprise page",
		PrefillName: d.SenderName,
		OnSuccess: func(payment PaymentResult) {
			payload := SubmitPayload{
				SurpriseID:        surpriseID,
				SenderName:        d.SenderName,
				ReceiverName:      d.ReceiverName,
				Message:           d.Message,
				Images:            imageURLs,
				AudioURL:          nil,
				Reasons:           d.trimmedReasons(),
				Timeline:          d.filledTimeline(),
				RazorpayPaymentID: payment.PaymentID,
				RazorpayOrderID:   payment.OrderID,
				RazorpaySignature: payment.Signature,
			}
			if err := c.Submitter.Submit(payload); err != nil {
				if errors.Is(err, ErrSubmissionRejected) {
					d.fail("Payment verification failed. Please contact support.")
				} else {
					d.fail("Failed to create surprise. Please try again.")
				}
				return
			}
			d.loading = false
			onDone(ViewerURL(surpriseID))
		},
		OnDismiss: func() {
			d.loading = false
		},
		OnError: func(error) {
			d.fail("Failed to load payment gateway. Please try again.")
		},
	})
}

func (d *Draft) fail(msg string) {
	d.err = msg
	d.loading = false
}

// ViewerURL builds the shareable page path, flagged as freshly created so
// the viewer shows its share banner.
func ViewerURL(surpriseID string) string {
	return fmt.Sprintf("/s/%s?new=1", surpriseID)
}
