package dashboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler fires callbacks only when the test advances its clock
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	s       *manualScheduler
	at      time.Duration
	f       func()
	fired   bool
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	pending := !t.fired && !t.stopped
	t.stopped = true
	return pending
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{s: m, at: m.now + d, f: f}
	m.timers = append(m.timers, t)
	return t
}

func (m *manualScheduler) pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward, running due callbacks in order
func (m *manualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	for {
		var due []*manualTimer
		for _, t := range m.timers {
			if !t.fired && !t.stopped && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
		next := due[0]
		m.now = next.at
		next.fired = true
		m.mu.Unlock()
		next.f()
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
}

func newTestSession(t *testing.T) (*Session, *manualScheduler) {
	t.Helper()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	sched := &manualScheduler{}
	s := NewSession(catalog, Options{Scheduler: sched})
	require.NoError(t, s.Start())
	t.Cleanup(s.Stop)
	return s, sched
}

func TestSession_Dispatch(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	_, err := s.Dispatch(ctx, SelectSection{Section: SectionQueries})
	require.NoError(t, err)
	snap, err := s.Dispatch(ctx, SelectSection{Section: SectionSettings})
	require.NoError(t, err)

	assert.Equal(t, SectionSettings, snap.State.ActiveSection)
	assert.Equal(t, SectionSettings, s.State().ActiveSection)
	assert.Equal(t, SectionSettings, s.Snapshot().State.ActiveSection)
}

func TestSession_NotificationTimerResetsOnEachSelection(t *testing.T) {
	s, sched := newTestSession(t)
	ctx := context.Background()

	_, err := s.Dispatch(ctx, SelectConnection{ConnectionID: 1})
	require.NoError(t, err)
	assert.True(t, s.State().NotificationVisible)

	sched.Advance(100 * time.Millisecond)
	_, err = s.Dispatch(ctx, SelectConnection{ConnectionID: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, sched.pending(), "previous timer should be cancelled")

	// 3000ms after the first click, 2900ms after the second
	sched.Advance(2900 * time.Millisecond)
	assert.True(t, s.State().NotificationVisible)

	// 3000ms after the second click
	sched.Advance(100 * time.Millisecond)
	assert.False(t, s.State().NotificationVisible)

	id, ok := s.State().Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestSession_SingleSelectionHidesAfterDelay(t *testing.T) {
	s, sched := newTestSession(t)

	_, err := s.Dispatch(context.Background(), SelectConnection{ConnectionID: 1})
	require.NoError(t, err)

	sched.Advance(2999 * time.Millisecond)
	assert.True(t, s.State().NotificationVisible)
	sched.Advance(time.Millisecond)
	assert.False(t, s.State().NotificationVisible)
}

func TestSession_UnknownConnection(t *testing.T) {
	s, sched := newTestSession(t)

	_, err := s.Dispatch(context.Background(), SelectConnection{ConnectionID: 42})
	assert.True(t, errors.Is(err, ErrUnknownConnection))
	assert.False(t, s.State().NotificationVisible)
	assert.Equal(t, 0, sched.pending())
}

func TestSession_ListenersSeeEveryTransition(t *testing.T) {
	s, sched := newTestSession(t)

	var mu sync.Mutex
	var events []string
	var lastVisible bool
	unsubscribe := s.Subscribe(func(event Event, snap Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event.Name())
		lastVisible = snap.Notification != nil
	})

	_, err := s.Dispatch(context.Background(), SelectConnection{ConnectionID: 1})
	require.NoError(t, err)
	sched.Advance(3 * time.Second)

	mu.Lock()
	assert.Equal(t, []string{"select_connection", "hide_notification"}, events)
	assert.False(t, lastVisible)
	mu.Unlock()

	unsubscribe()
	_, err = s.Dispatch(context.Background(), SelectMetric{Metric: MetricMemory})
	require.NoError(t, err)

	mu.Lock()
	assert.Len(t, events, 2)
	mu.Unlock()
}

func TestSession_StoppedSessionRejectsEvents(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	sched := &manualScheduler{}
	s := NewSession(catalog, Options{Scheduler: sched})

	_, err = s.Dispatch(context.Background(), SelectSection{Section: SectionQueries})
	assert.True(t, errors.Is(err, ErrSessionStopped))

	require.NoError(t, s.Start())
	assert.Error(t, s.Start())
	_, err = s.Dispatch(context.Background(), SelectConnection{ConnectionID: 1})
	require.NoError(t, err)

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Equal(t, 0, sched.pending(), "stop cancels the pending timer")

	_, err = s.Dispatch(context.Background(), SelectSection{Section: SectionQueries})
	assert.True(t, errors.Is(err, ErrSessionStopped))
	assert.Error(t, s.Start())

	// stopping twice is harmless
	s.Stop()
}

func TestSession_InitialState(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	initial := DefaultViewState()
	initial.ActiveSection = SectionSettings
	s := NewSession(catalog, Options{Initial: initial, Scheduler: &manualScheduler{}})

	assert.Equal(t, SectionSettings, s.State().ActiveSection)
	assert.Same(t, catalog, s.Catalog())
}

func TestSession_WallClockTimer(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	s := NewSession(catalog, Options{NotificationDelay: 20 * time.Millisecond})
	require.NoError(t, s.Start())
	defer s.Stop()

	_, err = s.Dispatch(context.Background(), SelectConnection{ConnectionID: 1})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return !s.State().NotificationVisible
	}, 2*time.Second, 5*time.Millisecond)
}
