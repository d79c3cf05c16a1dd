package services

import (
	"valentine-surprise-server/utils"
	"valentine-surprise-server/wizard"
)

// NewCoordinator wires the wizard's submission flow to the production
// collaborators. The Checkout port is supplied by the embedding frontend
// harness, which owns the hosted payment modal.
func NewCoordinator(endpoint string, checkout wizard.Checkout) *wizard.Coordinator {
	return &wizard.Coordinator{
		Uploader:  CloudinaryUploader{},
		Checkout:  checkout,
		Submitter: &HTTPSubmitter{Endpoint: endpoint},
		Amount:    utils.PriceInPaise(),
		Currency:  "INR",
	}
}
