// Package pushchannel fans tracking events out to the sessions watching an order.
package pushchannel

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"efood/internal/domain/entity"
	"efood/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrHubClosed is returned when subscribing to a hub that has shut down.
var ErrHubClosed = errors.New("push channel hub closed")

// Hub is an in-process push channel keyed by order id. Receivers feed it with
// Dispatch; tracking sessions read from it through Subscribe.
type Hub struct {
	buffer          int
	deliveryTimeout time.Duration
	logger          *slog.Logger

	mu     sync.RWMutex
	subs   map[int64]map[*subscription]struct{}
	closed bool
}

// NewHub creates a hub whose subscriptions buffer up to buffer events.
func NewHub(buffer int, deliveryTimeout time.Duration, logger *slog.Logger) *Hub {
	if buffer < 1 {
		buffer = 1
	}

	return &Hub{
		buffer:          buffer,
		deliveryTimeout: deliveryTimeout,
		logger:          logger,
		subs:            make(map[int64]map[*subscription]struct{}),
	}
}

// Subscribe registers interest in one order. The subscription ends on
// Unsubscribe, when ctx is done, or when the hub closes.
func (h *Hub) Subscribe(ctx context.Context, orderID int64) (service.Subscription, error) {
	sub := &subscription{
		hub:     h,
		orderID: orderID,
		events:  make(chan entity.TrackingEvent, h.buffer),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil, ErrHubClosed
	}
	if h.subs[orderID] == nil {
		h.subs[orderID] = make(map[*subscription]struct{})
	}
	h.subs[orderID][sub] = struct{}{}
	h.mu.Unlock()

	stop := context.AfterFunc(ctx, func() {
		_ = sub.Unsubscribe()
	})
	sub.mu.Lock()
	sub.stopAfter = stop
	sub.mu.Unlock()

	return sub, nil
}

// Dispatch delivers the event to every subscription of its order and returns
// how many received it. A full buffer drops driver-location events. A status
// event takes the place of the oldest buffered location, or waits up to the
// delivery timeout when the buffer holds only status events.
func (h *Hub) Dispatch(ctx context.Context, event entity.TrackingEvent) int {
	h.mu.RLock()
	targets := make([]*subscription, 0, len(h.subs[event.OrderID]))
	for sub := range h.subs[event.OrderID] {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, sub := range targets {
		if sub.deliver(ctx, event, h.deliveryTimeout) {
			delivered++

			continue
		}

		h.logger.Warn("Tracking event not delivered to subscriber",
			slog.Int64("order_id", event.OrderID),
			slog.String("event_type", event.Type.String()),
		)
	}

	return delivered
}

// SubscriberCount returns the number of live subscriptions of an order.
func (h *Hub) SubscriberCount(orderID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[orderID])
}

// Close ends every subscription and refuses new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	h.closed = true
	var all []*subscription
	for _, set := range h.subs {
		for sub := range set {
			all = append(all, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range all {
		_ = sub.Unsubscribe()
	}

	return nil
}

func (h *Hub) remove(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[sub.orderID]
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.orderID)
	}
}

type subscription struct {
	hub     *Hub
	orderID int64

	// done is closed first so a blocked deliver gives up before events is closed.
	done     chan struct{}
	doneOnce sync.Once

	mu        sync.Mutex // serialises sends with closing events
	closed    bool
	events    chan entity.TrackingEvent
	stopAfter func() bool
}

func (s *subscription) Events() <-chan entity.TrackingEvent {
	return s.events
}

func (s *subscription) Unsubscribe() error {
	s.doneOnce.Do(func() {
		close(s.done)
		s.hub.remove(s)

		s.mu.Lock()
		s.closed = true
		close(s.events)
		stop := s.stopAfter
		s.mu.Unlock()

		if stop != nil {
			stop()
		}
	})

	return nil
}

func (s *subscription) deliver(ctx context.Context, event entity.TrackingEvent, timeout time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.events <- event:
		return true
	default:
	}

	if event.Type == entity.TrackingEventDriverLocation {
		return false
	}

	if s.evictLocationLocked() {
		select {
		case s.events <- event:
			return true
		default:
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case s.events <- event:
		return true
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	case <-timer.C:
		return false
	}
}

// evictLocationLocked removes the oldest buffered driver-location event and
// keeps the order of the rest. Callers hold s.mu, so they are the only senders
// and putting the remaining events back never blocks.
func (s *subscription) evictLocationLocked() bool {
	pending := make([]entity.TrackingEvent, 0, len(s.events))
	for range len(s.events) {
		select {
		case event := <-s.events:
			pending = append(pending, event)
		default:
		}
	}

	evicted := false
	for _, event := range pending {
		if !evicted && event.Type == entity.TrackingEventDriverLocation {
			evicted = true

			continue
		}
		s.events <- event
	}

	return evicted
}
