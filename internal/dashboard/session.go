package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"DBDashboard/internal/pkg/logger"
)

// DefaultNotificationDelay is how long the connection notification stays visible
const DefaultNotificationDelay = 3000 * time.Millisecond

var (
	// ErrSessionStopped is returned when dispatching to a session that is not running
	ErrSessionStopped = errors.New("dashboard session is not running")
	// ErrUnknownConnection is returned when selecting a connection the catalog does not hold
	ErrUnknownConnection = errors.New("unknown connection")
)

// Listener receives the event and resulting snapshot after every transition.
// It runs on the session loop and must not call Dispatch.
type Listener func(event Event, snap Snapshot)

// Options configures a Session
type Options struct {
	Initial           ViewState
	NotificationDelay time.Duration
	Scheduler         Scheduler
}

type request struct {
	event Event
	reply chan ViewState
}

// Session owns the ViewState of one dashboard and applies events to it on a
// single loop goroutine, so each transition runs to completion before the
// next one starts.
type Session struct {
	catalog   *Catalog
	delay     time.Duration
	scheduler Scheduler

	requests  chan request
	stopChan  chan struct{}
	doneChan  chan struct{}
	isRunning bool
	mutex     sync.Mutex

	// owned by the loop goroutine
	state     ViewState
	hideTimer Timer

	current   ViewState
	stateMu   sync.RWMutex
	listeners map[int]Listener
	nextID    int
	listenMu  sync.RWMutex
}

// NewSession creates a session over catalog. Start must be called before Dispatch.
func NewSession(catalog *Catalog, opts Options) *Session {
	if opts.NotificationDelay <= 0 {
		opts.NotificationDelay = DefaultNotificationDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = SystemScheduler()
	}
	if opts.Initial == (ViewState{}) {
		opts.Initial = DefaultViewState()
	}

	return &Session{
		catalog:   catalog,
		delay:     opts.NotificationDelay,
		scheduler: opts.Scheduler,
		requests:  make(chan request),
		stopChan:  make(chan struct{}),
		doneChan:  make(chan struct{}),
		state:     opts.Initial,
		current:   opts.Initial,
		listeners: make(map[int]Listener),
	}
}

// Start launches the event loop. A stopped session cannot be restarted.
func (s *Session) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isRunning {
		return fmt.Errorf("dashboard session is already running")
	}
	select {
	case <-s.stopChan:
		return fmt.Errorf("dashboard session was stopped")
	default:
	}

	s.isRunning = true
	go s.loop()

	logger.Info("Dashboard session started",
		logger.Duration("notification_delay", s.delay),
		logger.String("section", string(s.state.ActiveSection)))
	return nil
}

// Stop halts the event loop and cancels any pending notification timer
func (s *Session) Stop() {
	s.mutex.Lock()
	if !s.isRunning {
		s.mutex.Unlock()
		return
	}
	s.isRunning = false
	close(s.stopChan)
	s.mutex.Unlock()

	<-s.doneChan
	logger.Info("Dashboard session stopped")
}

// IsRunning reports whether the event loop is active
func (s *Session) IsRunning() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.isRunning
}

// Catalog returns the sample data the session renders
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// State returns the latest ViewState
func (s *Session) State() ViewState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.current
}

// Snapshot returns the view model of the latest ViewState
func (s *Session) Snapshot() Snapshot {
	return BuildSnapshot(s.catalog, s.State())
}

// Subscribe registers l for every future transition and returns a function that removes it
func (s *Session) Subscribe(l Listener) func() {
	s.listenMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenMu.Unlock()

	return func() {
		s.listenMu.Lock()
		delete(s.listeners, id)
		s.listenMu.Unlock()
	}
}

// Dispatch applies event on the loop and returns the resulting snapshot
func (s *Session) Dispatch(ctx context.Context, event Event) (Snapshot, error) {
	if sel, ok := event.(SelectConnection); ok {
		if _, found := s.catalog.Connection(sel.ConnectionID); !found {
			return Snapshot{}, fmt.Errorf("%w: %d", ErrUnknownConnection, sel.ConnectionID)
		}
	}

	state, err := s.post(ctx, event)
	if err != nil {
		return Snapshot{}, err
	}
	return BuildSnapshot(s.catalog, state), nil
}

func (s *Session) post(ctx context.Context, event Event) (ViewState, error) {
	if !s.IsRunning() {
		return ViewState{}, ErrSessionStopped
	}

	req := request{event: event, reply: make(chan ViewState, 1)}
	select {
	case s.requests <- req:
	case <-s.stopChan:
		return ViewState{}, ErrSessionStopped
	case <-ctx.Done():
		return ViewState{}, ctx.Err()
	}

	// The loop always replies to a request it has received
	return <-req.reply, nil
}

func (s *Session) loop() {
	defer close(s.doneChan)

	for {
		select {
		case req := <-s.requests:
			req.reply <- s.apply(req.event)
		case <-s.stopChan:
			if s.hideTimer != nil {
				s.hideTimer.Stop()
				s.hideTimer = nil
			}
			return
		}
	}
}

func (s *Session) apply(event Event) ViewState {
	next, effect := Reduce(s.state, event)
	s.state = next

	if effect.ScheduleHide {
		s.scheduleHide(effect.Seq)
	}

	s.stateMu.Lock()
	s.current = next
	s.stateMu.Unlock()

	logger.Debug("Dashboard transition",
		logger.String("event", event.Name()),
		logger.String("section", string(next.ActiveSection)),
		logger.Bool("notification_visible", next.NotificationVisible))

	s.publish(event, next)
	return next
}

// scheduleHide replaces the pending hide timer with one for seq
func (s *Session) scheduleHide(seq uint64) {
	if s.hideTimer != nil {
		s.hideTimer.Stop()
	}
	s.hideTimer = s.scheduler.AfterFunc(s.delay, func() {
		if _, err := s.post(context.Background(), HideNotification{Seq: seq}); err != nil {
			logger.Debug("Dropped notification timeout",
				logger.Uint64("seq", seq),
				logger.Err(err))
		}
	})
}

func (s *Session) publish(event Event, state ViewState) {
	s.listenMu.RLock()
	defer s.listenMu.RUnlock()

	if len(s.listeners) == 0 {
		return
	}
	snap := BuildSnapshot(s.catalog, state)
	for _, l := range s.listeners {
		l(event, snap)
	}
}
