// internal/visa/session/store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"visa-platform/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// Keys are the values the wizard exposes to the payment flow after a
// successful submission. All three are stored as strings, matching how the
// payment page reads them back.
type Keys struct {
	ApplicationID   string `json:"applicationId"`
	ReferenceNumber string `json:"referenceNumber"`
	TotalAmount     string `json:"totalAmount"`
}

// Store keeps post-submission keys in Redis, scoped by browser session id.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewStore(client *redis.Client, ttl time.Duration, log logger.Logger) *Store {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "session-store"}),
	}
}

func submissionKey(sessionID string) string {
	return fmt.Sprintf("visa:session:%s:submission", sessionID)
}

// SaveSubmission stores the keys for a session, replacing any previous ones.
func (s *Store) SaveSubmission(ctx context.Context, sessionID string, keys *Keys) error {
	data, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to marshal session keys: %w", err)
	}

	if err := s.client.Set(ctx, submissionKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session keys: %w", err)
	}

	s.logger.Debug("session keys saved", map[string]interface{}{
		"sessionId":       sessionID,
		"referenceNumber": keys.ReferenceNumber,
	})
	return nil
}

// GetSubmission returns the stored keys, or redis.Nil via the wrapped error
// when the session has none.
func (s *Store) GetSubmission(ctx context.Context, sessionID string) (*Keys, error) {
	data, err := s.client.Get(ctx, submissionKey(sessionID)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to load session keys: %w", err)
	}

	var keys Keys
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session keys: %w", err)
	}
	return &keys, nil
}

// ClearSubmission removes the keys for a session.
func (s *Store) ClearSubmission(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, submissionKey(sessionID)).Err()
}
