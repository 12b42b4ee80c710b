// internal/visa/lookup/strategies.go
package lookup

import (
	"context"

	"visa-platform/internal/visa/application"
)

// Strategy resolves one identifier kind to an order summary.
type Strategy interface {
	Name() string
	Applicable(p Params) bool
	Lookup(ctx context.Context, p Params) (*application.Summary, error)
}

// sessionStrategy resolves a checkout session id through the payment
// provider, then loads the order it references.
type sessionStrategy struct {
	payments PaymentFetcher
	records  Records
}

func (s *sessionStrategy) Name() string { return "session_id" }

func (s *sessionStrategy) Applicable(p Params) bool { return p.SessionID != "" }

func (s *sessionStrategy) Lookup(ctx context.Context, p Params) (*application.Summary, error) {
	sess, err := s.payments.GetCheckoutSession(ctx, p.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.ApplicationID != "" {
		return s.records.GetByID(ctx, sess.ApplicationID)
	}
	return s.records.GetByPaymentIntent(ctx, sess.PaymentIntentID)
}

// intentStrategy resolves a payment intent id, preferring the provider's
// application reference and falling back to the local intent index.
type intentStrategy struct {
	payments PaymentFetcher
	records  Records
}

func (s *intentStrategy) Name() string { return "payment_intent" }

func (s *intentStrategy) Applicable(p Params) bool { return p.PaymentIntentID != "" }

func (s *intentStrategy) Lookup(ctx context.Context, p Params) (*application.Summary, error) {
	intent, err := s.payments.GetPaymentIntent(ctx, p.PaymentIntentID)
	if err == nil && intent.ApplicationID != "" {
		return s.records.GetByID(ctx, intent.ApplicationID)
	}
	return s.records.GetByPaymentIntent(ctx, p.PaymentIntentID)
}

// idStrategy reads the order straight from storage.
type idStrategy struct {
	records Records
}

func (s *idStrategy) Name() string { return "application_id" }

func (s *idStrategy) Applicable(p Params) bool { return p.ApplicationID != "" }

func (s *idStrategy) Lookup(ctx context.Context, p Params) (*application.Summary, error) {
	return s.records.GetByID(ctx, p.ApplicationID)
}
