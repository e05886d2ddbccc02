package impl

import (
	"context"
	"log/slog"

	"efood/internal/domain/cart"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/service"
	"efood/internal/usecase"
)

type checkoutService struct {
	sessions *CartSessions
	orderAPI service.OrderAPI
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(sessions *CartSessions, orderAPI service.OrderAPI, logger *slog.Logger) usecase.CheckoutUsecase {
	return &checkoutService{
		sessions: sessions,
		orderAPI: orderAPI,
		logger:   logger,
	}
}

// Checkout submits one store cart as an order.
// The session stays locked until the order API answers, so a second checkout
// of the same cart waits and then finds it cleared. Once the order API has
// accepted the order its receipt is returned even if clearing the cart fails.
func (s *checkoutService) Checkout(ctx context.Context, sessionID string, storeID int64) (*entity.OrderReceipt, error) {
	var receipt *entity.OrderReceipt
	err := s.sessions.Update(ctx, sessionID, func(store *cart.Store) error {
		storeCart, ok := store.SelectStore(storeID)
		if !ok {
			return domainerrors.ErrCartNotFound
		}

		submission, err := buildSubmission(storeCart)
		if err != nil {
			return err
		}

		receipt, err = s.orderAPI.SubmitOrder(ctx, submission)
		if err != nil {
			receipt = nil

			return err
		}

		store.ClearStore(storeID)

		return nil
	})
	if err != nil && receipt == nil {
		return nil, err
	}
	if err != nil {
		s.clearSubmittedStore(ctx, sessionID, storeID, receipt.OrderID, err)
	}

	s.logger.InfoContext(ctx, "Order submitted",
		slog.String("session_id", sessionID),
		slog.Int64("store_id", storeID),
		slog.Int64("order_id", receipt.OrderID),
	)

	return receipt, nil
}

// clearSubmittedStore retries clearing a store cart whose order already exists upstream.
func (s *checkoutService) clearSubmittedStore(ctx context.Context, sessionID string, storeID, orderID int64, cause error) {
	s.logger.WarnContext(ctx, "Failed to clear submitted cart, retrying",
		slog.String("session_id", sessionID),
		slog.Int64("store_id", storeID),
		slog.Int64("order_id", orderID),
		slog.Any("error", cause),
	)

	err := s.sessions.Update(ctx, sessionID, func(store *cart.Store) error {
		store.ClearStore(storeID)

		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Submitted cart is still stored",
			slog.String("session_id", sessionID),
			slog.Int64("store_id", storeID),
			slog.Int64("order_id", orderID),
			slog.Any("error", err),
		)
	}
}

// buildSubmission assembles the order payload of a store cart.
// A cart without lines is refused even when it carries a coupon.
func buildSubmission(storeCart entity.StoreCart) (*entity.OrderSubmission, error) {
	if len(storeCart.Lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if storeCart.PaymentMethod == "" {
		return nil, domainerrors.ErrPaymentMethodRequired
	}

	lines := make([]entity.SubmissionLine, 0, len(storeCart.Lines))
	for _, line := range storeCart.Lines {
		lines = append(lines, entity.SubmissionLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Note:      line.Note,
		})
	}

	return &entity.OrderSubmission{
		StoreID:        storeCart.StoreID,
		PaymentMethod:  storeCart.PaymentMethod,
		ShippingMethod: storeCart.ShippingMethod,
		CouponCode:     storeCart.CouponCode,
		Lines:          lines,
	}, nil
}
