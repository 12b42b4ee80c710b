// internal/visa/lookup/adapter.go
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/common/metrics"
	"visa-platform/internal/visa/application"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 60 * time.Second

// Adapter answers order lookups by trying identifier strategies in priority
// order: checkout session, then payment intent, then application id. A
// strategy that fails to yield an application does not end the lookup; the
// next supplied identifier is tried, and only after every one has missed is
// the order reported as not found.
type Adapter struct {
	strategies []Strategy
	cache      *redis.Client
	logger     logger.Logger
}

func NewAdapter(payments PaymentFetcher, records Records, cache *redis.Client, log logger.Logger) *Adapter {
	return &Adapter{
		strategies: []Strategy{
			&sessionStrategy{payments: payments, records: records},
			&intentStrategy{payments: payments, records: records},
			&idStrategy{records: records},
		},
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"component": "lookup-adapter"}),
	}
}

func cacheKey(strategy string, p Params) string {
	switch strategy {
	case "session_id":
		return fmt.Sprintf("visa:lookup:session:%s", p.SessionID)
	case "payment_intent":
		return fmt.Sprintf("visa:lookup:intent:%s", p.PaymentIntentID)
	default:
		return fmt.Sprintf("visa:lookup:app:%s", p.ApplicationID)
	}
}

// Lookup resolves the order for the supplied identifiers. Strategies are
// tried in priority order; a miss from one falls through to the next supplied
// identifier.
func (a *Adapter) Lookup(ctx context.Context, p Params) (*application.Summary, error) {
	tried := 0
	for _, strategy := range a.strategies {
		if !strategy.Applicable(p) {
			continue
		}
		tried++

		key := cacheKey(strategy.Name(), p)
		if sum := a.fromCache(ctx, key); sum != nil {
			metrics.OrderLookups.WithLabelValues(strategy.Name(), "cache_hit").Inc()
			return sum, nil
		}

		sum, err := strategy.Lookup(ctx, p)
		if err != nil {
			result := "error"
			if stdErr, ok := err.(*errors.StandardError); ok && stdErr.Code == errors.ErrCodeApplicationNotFound {
				result = "not_found"
			}
			metrics.OrderLookups.WithLabelValues(strategy.Name(), result).Inc()
			a.logger.WithError(err).Warn("lookup missed, trying next identifier", map[string]interface{}{
				"strategy": strategy.Name(),
			})
			continue
		}

		a.toCache(ctx, key, sum)
		metrics.OrderLookups.WithLabelValues(strategy.Name(), "success").Inc()
		return sum, nil
	}

	if tried == 0 {
		metrics.OrderLookups.WithLabelValues("none", "not_found").Inc()
		return nil, errors.NewApplicationNotFoundError("no identifier supplied")
	}
	return nil, errors.NewApplicationNotFoundError(
		fmt.Sprintf("no application for any of %d supplied identifiers", tried))
}

func (a *Adapter) fromCache(ctx context.Context, key string) *application.Summary {
	if a.cache == nil {
		return nil
	}
	data, err := a.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var sum application.Summary
	if err := json.Unmarshal(data, &sum); err != nil {
		return nil
	}
	return &sum
}

func (a *Adapter) toCache(ctx context.Context, key string, sum *application.Summary) {
	if a.cache == nil {
		return
	}
	data, err := json.Marshal(sum)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		a.logger.WithError(err).Debug("lookup cache write failed", map[string]interface{}{
			"key": key,
		})
	}
}
