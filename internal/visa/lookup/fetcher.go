// internal/visa/lookup/fetcher.go
package lookup

import (
	"context"
	"fmt"

	"visa-platform/internal/common/errors"
	commonhttp "visa-platform/internal/common/http"
	"visa-platform/internal/common/logger"
)

// HTTPPaymentFetcher reads checkout sessions and payment intents from the
// payment provider's REST API.
type HTTPPaymentFetcher struct {
	baseURL string
	client  *commonhttp.Client
	logger  logger.Logger
}

func NewHTTPPaymentFetcher(baseURL string, client *commonhttp.Client, log logger.Logger) *HTTPPaymentFetcher {
	return &HTTPPaymentFetcher{
		baseURL: baseURL,
		client:  client,
		logger:  log.WithFields(map[string]interface{}{"component": "payment-fetcher"}),
	}
}

func (f *HTTPPaymentFetcher) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	var sess CheckoutSession
	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", f.baseURL, sessionID)
	if err := f.client.GetJSON(ctx, url, &sess); err != nil {
		return nil, errors.NewPaymentLookupFailedError(err)
	}
	return &sess, nil
}

func (f *HTTPPaymentFetcher) GetPaymentIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	var intent PaymentIntent
	url := fmt.Sprintf("%s/v1/payment_intents/%s", f.baseURL, intentID)
	if err := f.client.GetJSON(ctx, url, &intent); err != nil {
		return nil, errors.NewPaymentLookupFailedError(err)
	}
	return &intent, nil
}
