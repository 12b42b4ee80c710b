// internal/visa/wizard/manager_test.go
package wizard

import (
	"testing"
	"time"

	"visa-platform/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndDo(t *testing.T) {
	m := NewManager(&fakeCreator{}, nil, &fakeSessions{}, 0, logger.NewTestLogger(t))

	id1 := m.Create()
	id2 := m.Create()
	require.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2, "every session gets its own wizard")

	// Mutations through Do stick to the named session only.
	require.NoError(t, m.Do(id1, func(w *Wizard) error {
		w.SetApplicantCount(3)
		return nil
	}))

	var count1, count2 int
	require.NoError(t, m.Do(id1, func(w *Wizard) error {
		count1 = len(w.Applicants())
		return nil
	}))
	require.NoError(t, m.Do(id2, func(w *Wizard) error {
		count2 = len(w.Applicants())
		return nil
	}))
	assert.Equal(t, 3, count1)
	assert.Equal(t, 1, count2)
}

func TestManager_Do_UnknownSession(t *testing.T) {
	m := NewManager(&fakeCreator{}, nil, nil, 0, logger.NewNoOpLogger())

	err := m.Do("missing", func(*Wizard) error {
		t.Fatal("fn must not run for an unknown session")
		return nil
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_PrunesIdleSessions(t *testing.T) {
	m := NewManager(&fakeCreator{}, nil, nil, time.Millisecond, logger.NewNoOpLogger())

	stale := m.Create()
	time.Sleep(10 * time.Millisecond)
	m.Create() // triggers the prune pass

	err := m.Do(stale, func(*Wizard) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWizard_Seed(t *testing.T) {
	w := New(&fakeCreator{}, nil, nil, logger.NewNoOpLogger())

	w.Seed("VN123", "DE", "business", "SGN", "1-day")

	assert.Equal(t, "VN123", w.Travel().FlightNumber)
	assert.Equal(t, "business", w.Travel().Purpose)
	assert.Equal(t, "SGN", w.Travel().EntryPort)
	assert.Equal(t, "DE", w.Applicants()[0].Nationality)
	assert.Equal(t, "1-day", w.Snapshot().VisaSpeed)
}

func TestWizard_Seed_Defaults(t *testing.T) {
	w := New(&fakeCreator{}, nil, nil, logger.NewNoOpLogger())

	w.Seed("", "", "smuggling", "", "")

	assert.Equal(t, "tourist", w.Travel().Purpose)
	assert.Empty(t, w.Travel().FlightNumber)
	assert.Equal(t, "30-min", w.Snapshot().VisaSpeed)
}

func TestWizard_Snapshot(t *testing.T) {
	w := New(&fakeCreator{}, nil, nil, logger.NewNoOpLogger())
	w.SetApplicantCount(2)
	w.GoToApplicant(1)

	snap := w.Snapshot()
	assert.Equal(t, StateCollectingApplicant, snap.State)
	assert.Equal(t, 1, snap.CurrentApplicant)
	assert.Len(t, snap.Applicants, 2)
	assert.Empty(t, snap.LastError)
	assert.Nil(t, snap.Result)
}
