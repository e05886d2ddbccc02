package handler

import (
	"log/slog"
	"net/http"

	"efood/internal/delivery/api/response"
	deliverycontext "efood/internal/delivery/context"
	"efood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler submits store carts as orders
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// Checkout submits one store cart and returns the order receipt
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	storeID, err := pathID(c, "storeId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	receipt, err := h.checkoutUC.Checkout(ctx, sid, storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Order submitted",
		slog.Int64("store_id", storeID),
		slog.Int64("order_id", receipt.OrderID),
	)

	return response.Success(c, http.StatusCreated, receipt)
}
