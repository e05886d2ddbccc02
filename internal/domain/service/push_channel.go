package service

import (
	"context"

	"efood/internal/domain/entity"
)

// Subscription is a live feed of tracking events for one order.
type Subscription interface {
	// Events yields events in arrival order. It is closed after Unsubscribe
	// or when the channel shuts down.
	Events() <-chan entity.TrackingEvent

	// Unsubscribe stops delivery. It is safe to call more than once.
	Unsubscribe() error
}

// PushChannel subscribes to tracking events by order id.
// Connection lifecycle belongs to the implementation.
type PushChannel interface {
	Subscribe(ctx context.Context, orderID int64) (Subscription, error)
}

// TrackingEventDispatcher hands an inbound event to the subscribers of its order.
type TrackingEventDispatcher interface {
	// Dispatch returns the number of subscriptions the event reached.
	Dispatch(ctx context.Context, event entity.TrackingEvent) int
}
