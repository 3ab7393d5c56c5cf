package service

import (
	"context"
)

// PaymentIntent mirrors the provider's intent object, reduced to the fields
// settlement needs. Status "succeeded" is the only value that completes an
// order.
type PaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret"`
	Status       string            `json:"status"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Metadata     map[string]string `json:"metadata"`
}

const IntentStatusSucceeded = "succeeded"

type CreateIntentRequest struct {
	// Amount in the smallest currency unit (cents).
	Amount   int64
	Currency string
	Metadata map[string]string
}

type Transfer struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Destination string `json:"destination"`
}

type TransferRequest struct {
	Amount        int64
	Currency      string
	Destination   string
	TransferGroup string
}

// PaymentGateway is the provider-facing surface: intent creation for
// checkout, intent retrieval for confirmation, transfers for seller payouts.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
	CreateTransfer(ctx context.Context, req TransferRequest) (*Transfer, error)
}

// WebhookVerifier authenticates inbound provider notifications. The
// production implementation checks the provider's HMAC signature; tests
// substitute their own. Verification is never bypassed by a runtime
// environment check.
type WebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) error
}
