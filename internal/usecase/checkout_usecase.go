package usecase

import (
	"context"

	"efood/internal/domain/entity"
)

// CheckoutUsecase turns one store cart into an order
type CheckoutUsecase interface {
	// Checkout submits the store cart and clears it once the order is accepted.
	// Other store carts of the session are left untouched.
	Checkout(ctx context.Context, sessionID string, storeID int64) (*entity.OrderReceipt, error)
}
