package usecase

import (
	"context"

	"efood/internal/domain/entity"
)

// AddItemInput represents a product being added to a store cart
type AddItemInput struct {
	ProductID int64        `json:"product_id" validate:"required,gt=0"`
	Name      string       `json:"name" validate:"max=200"`
	Price     entity.Money `json:"price" validate:"gte=0"`
	Quantity  int          `json:"quantity" validate:"required,gt=0,lte=999"`
	Note      string       `json:"note" validate:"max=500"`
}

// StoreCartView is a store cart with its computed totals
type StoreCartView struct {
	entity.StoreCart
	TotalProducts int          `json:"total_products"`
	TotalPrice    entity.Money `json:"total_price"`
}

// CartsView lists every store cart of a session
type CartsView struct {
	Stores        []StoreCartView `json:"stores"`
	TotalProducts int             `json:"total_products"`
}

// CartUsecase defines the session-scoped cart operations.
// Mutations return the store cart after the change, or nil when it no longer exists.
type CartUsecase interface {
	// GetCarts returns all store carts of the session in creation order
	GetCarts(ctx context.Context, sessionID string) (*CartsView, error)

	// GetStoreCart returns one store cart or ErrCartNotFound
	GetStoreCart(ctx context.Context, sessionID string, storeID int64) (*StoreCartView, error)

	// AddItem adds a product, merging with an existing line
	AddItem(ctx context.Context, sessionID string, storeID int64, input *AddItemInput) (*StoreCartView, error)

	// SetQuantity sets a line quantity; zero removes the line
	SetQuantity(ctx context.Context, sessionID string, storeID, productID int64, quantity int) (*StoreCartView, error)

	// RemoveItem removes a line
	RemoveItem(ctx context.Context, sessionID string, storeID, productID int64) (*StoreCartView, error)

	// SetShippingMethod selects delivery or takeaway
	SetShippingMethod(ctx context.Context, sessionID string, storeID int64, method entity.ShippingMethod) (*StoreCartView, error)

	// SetPaymentMethod selects how the order is paid
	SetPaymentMethod(ctx context.Context, sessionID string, storeID int64, method entity.PaymentMethod) (*StoreCartView, error)

	// SetCouponCode sets or clears the coupon
	SetCouponCode(ctx context.Context, sessionID string, storeID int64, code string) (*StoreCartView, error)

	// ClearStore deletes one store cart
	ClearStore(ctx context.Context, sessionID string, storeID int64) error
}
