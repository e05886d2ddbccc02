package service

import (
	"context"

	"efood/internal/domain/entity"
)

// TrackingEventPublisher defines the interface for publishing tracking events to the push channel
type TrackingEventPublisher interface {
	// Publish sends one tracking event to subscribers of its order
	Publish(ctx context.Context, event entity.TrackingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
