// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"efood/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCartSessionNotFound is returned when no cart state is stored for a session.
var ErrCartSessionNotFound = errors.New("cart session not found")

// CartSessionRepository stores the serialised cart state of a browser session.
type CartSessionRepository interface {
	// Load returns the stored cart state of a session.
	Load(ctx context.Context, sessionID string) (entity.CartState, error)

	// Save replaces the stored cart state and refreshes its expiry.
	Save(ctx context.Context, sessionID string, state entity.CartState) error

	// Delete drops the session's cart state. Deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
