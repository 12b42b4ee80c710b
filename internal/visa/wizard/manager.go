// internal/visa/wizard/manager.go
package wizard

import (
	"errors"
	"sync"
	"time"

	"visa-platform/internal/common/logger"
	"visa-platform/internal/visa/application"
	"visa-platform/internal/visa/photos"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no wizard exists for a session id.
var ErrSessionNotFound = errors.New("WIZARD_SESSION_NOT_FOUND")

const defaultSessionIdle = 24 * time.Hour

type managed struct {
	mu      sync.Mutex
	wizard  *Wizard
	touched time.Time
}

// Manager owns the server-side wizard instances, one per browser session.
// Wizard methods are not safe for concurrent use, so every access goes
// through the per-session lock held by Do.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*managed
	idle    time.Duration

	creator  application.Creator
	uploader *photos.Uploader
	sessions SessionSaver
	logger   logger.Logger
}

func NewManager(creator application.Creator, uploader *photos.Uploader, sessions SessionSaver, idle time.Duration, log logger.Logger) *Manager {
	if idle == 0 {
		idle = defaultSessionIdle
	}
	return &Manager{
		entries:  make(map[string]*managed),
		idle:     idle,
		creator:  creator,
		uploader: uploader,
		sessions: sessions,
		logger:   log.WithFields(map[string]interface{}{"component": "wizard-manager"}),
	}
}

// Create starts a fresh wizard and returns its session id.
func (m *Manager) Create() string {
	id := uuid.NewString()
	w := New(m.creator, m.uploader, m.sessions, m.logger)

	m.mu.Lock()
	m.prune()
	m.entries[id] = &managed{wizard: w, touched: time.Now()}
	total := len(m.entries)
	m.mu.Unlock()

	m.logger.Debug("wizard session created", map[string]interface{}{
		"sessionId":      id,
		"activeSessions": total,
	})
	return id
}

// Do runs fn with the session's wizard under its lock.
func (m *Manager) Do(sessionID string, fn func(*Wizard) error) error {
	m.mu.Lock()
	e, ok := m.entries[sessionID]
	if ok {
		e.touched = time.Now()
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.wizard)
}

// prune drops sessions idle past the limit. Caller holds m.mu.
func (m *Manager) prune() {
	cutoff := time.Now().Add(-m.idle)
	for id, e := range m.entries {
		if e.touched.Before(cutoff) {
			delete(m.entries, id)
		}
	}
}
