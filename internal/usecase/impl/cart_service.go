package impl

import (
	"context"

	"efood/internal/domain/cart"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/usecase"
)

type cartService struct {
	sessions *CartSessions
}

// NewCartService creates a new cart service instance
func NewCartService(sessions *CartSessions) usecase.CartUsecase {
	return &cartService{
		sessions: sessions,
	}
}

// GetCarts returns all store carts of the session
func (s *cartService) GetCarts(ctx context.Context, sessionID string) (*usecase.CartsView, error) {
	var view *usecase.CartsView
	err := s.sessions.View(ctx, sessionID, func(store *cart.Store) error {
		view = cartsView(store)

		return nil
	})

	return view, err
}

// GetStoreCart returns one store cart
func (s *cartService) GetStoreCart(ctx context.Context, sessionID string, storeID int64) (*usecase.StoreCartView, error) {
	var view *usecase.StoreCartView
	err := s.sessions.View(ctx, sessionID, func(store *cart.Store) error {
		view = storeCartView(store, storeID)

		return nil
	})
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domainerrors.ErrCartNotFound
	}

	return view, nil
}

// AddItem adds a product to a store cart
func (s *cartService) AddItem(ctx context.Context, sessionID string, storeID int64, input *usecase.AddItemInput) (*usecase.StoreCartView, error) {
	product := entity.Product{ID: input.ProductID, Name: input.Name, Price: input.Price}

	return s.mutate(ctx, sessionID, storeID, func(store *cart.Store) {
		store.AddItem(storeID, product, input.Quantity, input.Note)
	})
}

// SetQuantity sets the quantity of a line
func (s *cartService) SetQuantity(ctx context.Context, sessionID string, storeID, productID int64, quantity int) (*usecase.StoreCartView, error) {
	return s.mutate(ctx, sessionID, storeID, func(store *cart.Store) {
		store.SetQuantity(storeID, productID, quantity)
	})
}

// RemoveItem removes a line
func (s *cartService) RemoveItem(ctx context.Context, sessionID string, storeID, productID int64) (*usecase.StoreCartView, error) {
	return s.mutate(ctx, sessionID, storeID, func(store *cart.Store) {
		store.RemoveItem(storeID, productID)
	})
}

// SetShippingMethod selects the shipping method
func (s *cartService) SetShippingMethod(ctx context.Context, sessionID string, storeID int64, method entity.ShippingMethod) (*usecase.StoreCartView, error) {
	if !method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown shipping method " + method.String())
	}

	return s.mutate(ctx, sessionID, storeID, func(store *cart.Store) {
		store.SetShippingMethod(storeID, method)
	})
}

// SetPaymentMethod selects the payment method
func (s *cartService) SetPaymentMethod(ctx context.Context, sessionID string, storeID int64, method entity.PaymentMethod) (*usecase.StoreCartView, error) {
	if !method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method " + method.String())
	}

	return s.mutate(ctx, sessionID, storeID, func(store *cart.Store) {
		store.SetPaymentMethod(storeID, method)
	})
}

// SetCouponCode sets or clears the coupon code
func (s *cartService) SetCouponCode(ctx context.Context, sessionID string, storeID int64, code string) (*usecase.StoreCartView, error) {
	return s.mutate(ctx, sessionID, storeID, func(store *cart.Store) {
		store.SetCouponCode(storeID, code)
	})
}

// ClearStore deletes a store cart
func (s *cartService) ClearStore(ctx context.Context, sessionID string, storeID int64) error {
	return s.sessions.Update(ctx, sessionID, func(store *cart.Store) error {
		store.ClearStore(storeID)

		return nil
	})
}

func (s *cartService) mutate(ctx context.Context, sessionID string, storeID int64, fn func(store *cart.Store)) (*usecase.StoreCartView, error) {
	var view *usecase.StoreCartView
	err := s.sessions.Update(ctx, sessionID, func(store *cart.Store) error {
		fn(store)
		view = storeCartView(store, storeID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func storeCartView(store *cart.Store, storeID int64) *usecase.StoreCartView {
	storeCart, ok := store.SelectStore(storeID)
	if !ok {
		return nil
	}

	return &usecase.StoreCartView{
		StoreCart:     storeCart,
		TotalProducts: store.StoreTotalProducts(storeID),
		TotalPrice:    store.StoreTotalPrice(storeID),
	}
}

func cartsView(store *cart.Store) *usecase.CartsView {
	stores := store.Stores()
	view := &usecase.CartsView{
		Stores:        make([]usecase.StoreCartView, 0, len(stores)),
		TotalProducts: store.TotalProducts(),
	}
	for _, storeCart := range stores {
		view.Stores = append(view.Stores, usecase.StoreCartView{
			StoreCart:     storeCart,
			TotalProducts: storeCart.TotalProducts(),
			TotalPrice:    storeCart.TotalPrice(),
		})
	}

	return view
}
