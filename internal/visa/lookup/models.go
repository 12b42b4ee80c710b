// internal/visa/lookup/models.go
package lookup

import (
	"context"

	"visa-platform/internal/visa/application"
)

// Params carries the identifiers a lookup request may supply. Any subset may
// be present; strategies are tried in priority order.
type Params struct {
	SessionID       string
	PaymentIntentID string
	ApplicationID   string
}

// CheckoutSession is the slice of the payment provider's checkout object the
// lookup needs.
type CheckoutSession struct {
	ID              string `json:"id"`
	PaymentIntentID string `json:"payment_intent"`
	ApplicationID   string `json:"application_id"`
	AmountTotal     int    `json:"amount_total"`
	Status          string `json:"status"`
}

// PaymentIntent is the slice of the payment provider's intent object the
// lookup needs.
type PaymentIntent struct {
	ID            string `json:"id"`
	ApplicationID string `json:"application_id"`
	Amount        int    `json:"amount"`
	Status        string `json:"status"`
}

// PaymentFetcher resolves payment provider identifiers to application ids.
type PaymentFetcher interface {
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	GetPaymentIntent(ctx context.Context, intentID string) (*PaymentIntent, error)
}

// Records serves stored order summaries. Satisfied by application.Store.
type Records interface {
	GetByID(ctx context.Context, applicationID string) (*application.Summary, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*application.Summary, error)
}
