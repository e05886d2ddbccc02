package model

import (
	"time"

	"efood/internal/domain/entity"
)

// CartSessionVersion is the current layout of a stored cart session.
const CartSessionVersion = 1

// CartSessionModel is the JSON document stored per cart session.
type CartSessionModel struct {
	Version   int                `json:"version"`
	Stores    []entity.StoreCart `json:"stores"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// FromCartState converts a domain cart state into its stored form.
func FromCartState(state entity.CartState, now time.Time) *CartSessionModel {
	return &CartSessionModel{
		Version:   CartSessionVersion,
		Stores:    state.Stores,
		UpdatedAt: now.UTC(),
	}
}

// ToCartState converts the stored form back into a domain cart state.
// Rehydrated state is untrusted; callers rebuild it through cart.Restore.
func (m *CartSessionModel) ToCartState() entity.CartState {
	return entity.CartState{Stores: m.Stores}
}
