// Package tracking keeps one order's snapshot live from push-channel events.
package tracking

import (
	"log/slog"
	"sync"

	"efood/internal/domain/entity"
	"efood/internal/domain/service"
)

// State is the lifecycle state of a Session.
type State int

const (
	// Active sessions apply incoming events.
	Active State = iota
	// Closed sessions discard everything. There is no way back to Active.
	Closed
)

// String returns the string representation of the State.
func (s State) String() string {
	if s == Active {
		return "active"
	}

	return "closed"
}

// Observer is notified after a status change was applied. Observers run on a
// goroutine of their own, in the order the changes were applied, so a slow
// observer never holds up the reducer.
type Observer interface {
	OnStatusChange(prev, next entity.OrderSnapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(prev, next entity.OrderSnapshot)

// OnStatusChange calls f(prev, next).
func (f ObserverFunc) OnStatusChange(prev, next entity.OrderSnapshot) {
	f(prev, next)
}

// Option configures a Session.
type Option func(*Session)

// WithObserver registers an observer for status changes.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observers = append(s.observers, o)
	}
}

// WithLogger sets the logger used for discarded events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session reduces the push events of one order into a snapshot.
//
// A single goroutine consumes the subscription. Close and the reducer share
// one mutex and the Active check happens inside it, so once Close returns no
// event is applied even if the transport is still delivering.
type Session struct {
	orderID   int64
	sub       service.Subscription
	logger    *slog.Logger
	observers []Observer

	mu       sync.Mutex
	state    State
	snapshot entity.OrderSnapshot
	updates  chan entity.OrderSnapshot
	done     chan struct{}

	changesMu sync.Mutex
	changes   []statusChange
	wake      chan struct{}
	drained   chan struct{}

	unsubscribeOnce sync.Once
	unsubscribeErr  error
}

// NewSession starts tracking from an already fetched snapshot.
// A snapshot that is already terminal yields a session that is closed from the start.
func NewSession(initial entity.OrderSnapshot, sub service.Subscription, opts ...Option) *Session {
	s := &Session{
		orderID:  initial.OrderID,
		sub:      sub,
		logger:   slog.Default(),
		state:    Active,
		snapshot: initial.Clone(),
		updates:  make(chan entity.OrderSnapshot, 1),
		done:     make(chan struct{}),
		wake:     make(chan struct{}, 1),
		drained:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.updates <- s.snapshot.Clone()

	if len(s.observers) > 0 {
		go s.notifyObservers()
	} else {
		close(s.drained)
	}

	if initial.Status.IsTerminal() {
		_ = s.Close()

		return s
	}

	go s.run()

	return s
}

// OrderID returns the tracked order id.
func (s *Session) OrderID() int64 {
	return s.orderID
}

// Snapshot returns a copy of the current snapshot.
func (s *Session) Snapshot() entity.OrderSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot.Clone()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Updates yields the snapshot after each applied event, starting with the initial one.
// Only the newest unread snapshot is kept. The channel is closed when the session closes,
// after the final snapshot.
func (s *Session) Updates() <-chan entity.OrderSnapshot {
	return s.updates
}

// Done is closed when the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Drained is closed after the session closed and every observer has seen
// every status change applied before that.
func (s *Session) Drained() <-chan struct{} {
	return s.drained
}

// Close stops the session and unsubscribes from the push channel.
// Calling it more than once is safe.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()

		return s.unsubscribe()
	}
	s.closeLocked()
	s.mu.Unlock()

	return s.unsubscribe()
}

func (s *Session) run() {
	events := s.sub.Events()
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-events:
			if !ok {
				_ = s.Close()

				return
			}
			s.handle(event)
		}
	}
}

func (s *Session) handle(event entity.TrackingEvent) {
	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()
		s.logger.Info("Discarding event for closed tracking session",
			slog.Int64("order_id", s.orderID),
			slog.String("event_type", event.Type.String()))

		return
	}

	prev := s.snapshot
	next, changed := Reduce(prev, event)
	if !changed {
		s.mu.Unlock()
		s.logger.Debug("Ignoring tracking event",
			slog.Int64("order_id", s.orderID),
			slog.Int64("event_order_id", event.OrderID),
			slog.String("event_type", event.Type.String()),
			slog.String("status", prev.Status.String()))

		return
	}

	s.snapshot = next
	s.publishLocked(next.Clone())
	if prev.Status != next.Status {
		s.queueChange(prev, next)
	}

	terminal := next.Status.IsTerminal()
	if terminal {
		s.state = Closed
	}
	s.mu.Unlock()

	if !terminal {
		return
	}

	if err := s.unsubscribe(); err != nil {
		s.logger.Warn("Failed to unsubscribe tracking session",
			slog.Int64("order_id", s.orderID),
			slog.Any("error", err))
	}

	s.mu.Lock()
	s.releaseLocked()
	s.mu.Unlock()
}

// publishLocked replaces any unread snapshot with the new one. Callers hold s.mu,
// which makes them the only senders, so the send never blocks.
func (s *Session) publishLocked(snapshot entity.OrderSnapshot) {
	select {
	case <-s.updates:
	default:
	}
	s.updates <- snapshot
}

type statusChange struct {
	prev, next entity.OrderSnapshot
}

// queueChange hands a status change to the observer goroutine. Callers hold
// s.mu, so every change is queued before done is closed.
func (s *Session) queueChange(prev, next entity.OrderSnapshot) {
	if len(s.observers) == 0 {
		return
	}

	s.changesMu.Lock()
	s.changes = append(s.changes, statusChange{prev: prev.Clone(), next: next.Clone()})
	s.changesMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Session) takeChanges() []statusChange {
	s.changesMu.Lock()
	defer s.changesMu.Unlock()

	changes := s.changes
	s.changes = nil

	return changes
}

func (s *Session) notifyObservers() {
	defer close(s.drained)

	for {
		select {
		case <-s.wake:
			s.dispatch(s.takeChanges())
		case <-s.done:
			s.dispatch(s.takeChanges())

			return
		}
	}
}

func (s *Session) dispatch(changes []statusChange) {
	for _, change := range changes {
		for _, o := range s.observers {
			o.OnStatusChange(change.prev, change.next)
		}
	}
}

func (s *Session) closeLocked() {
	s.state = Closed
	s.releaseLocked()
}

// releaseLocked closes the session channels once Closed is set.
func (s *Session) releaseLocked() {
	close(s.done)
	close(s.updates)
}

func (s *Session) unsubscribe() error {
	s.unsubscribeOnce.Do(func() {
		s.unsubscribeErr = s.sub.Unsubscribe()
	})

	return s.unsubscribeErr
}
