package usecase

import (
	"context"

	"efood/internal/domain/tracking"
)

// TrackingUsecase opens live tracking sessions
type TrackingUsecase interface {
	// Open fetches the order snapshot and subscribes to its push events.
	// The session also ends when ctx is done; callers must Close it.
	Open(ctx context.Context, sessionID string, orderID int64) (*tracking.Session, error)
}
