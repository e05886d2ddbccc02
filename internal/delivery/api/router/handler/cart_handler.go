package handler

import (
	"log/slog"
	"net/http"

	"efood/internal/delivery/api/response"
	"efood/internal/domain/entity"
	"efood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// SetQuantityRequest represents the request body for changing a line quantity
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0,lte=999"`
}

// SetShippingMethodRequest represents the request body for selecting a shipping method
type SetShippingMethodRequest struct {
	ShippingMethod entity.ShippingMethod `json:"shipping_method" validate:"required"`
}

// SetPaymentMethodRequest represents the request body for selecting a payment method
type SetPaymentMethodRequest struct {
	PaymentMethod entity.PaymentMethod `json:"payment_method" validate:"required"`
}

// SetCouponRequest represents the request body for setting a coupon; an empty code clears it
type SetCouponRequest struct {
	CouponCode string `json:"coupon_code" validate:"max=64"`
}

// GetCarts lists every store cart of the session
func (h *CartHandler) GetCarts(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	carts, err := h.cartUC.GetCarts(c.Request().Context(), sid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, carts)
}

// GetStoreCart returns one store cart
func (h *CartHandler) GetStoreCart(c echo.Context) error {
	sid, storeID, err := h.cartScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.GetStoreCart(c.Request().Context(), sid, storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearStore deletes one store cart
func (h *CartHandler) ClearStore(c echo.Context) error {
	sid, storeID, err := h.cartScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.ClearStore(c.Request().Context(), sid, storeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// AddItem adds a product to a store cart
func (h *CartHandler) AddItem(c echo.Context) error {
	sid, storeID, err := h.cartScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.AddItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), sid, storeID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// SetQuantity changes a line quantity; zero removes the line
func (h *CartHandler) SetQuantity(c echo.Context) error {
	sid, storeID, err := h.cartScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.SetQuantity(c.Request().Context(), sid, storeID, productID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem removes a line from a store cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sid, storeID, err := h.cartScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), sid, storeID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// SetShippingMethod selects delivery or takeaway
func (h *CartHandler) SetShippingMethod(c echo.Context) error {
	sid, storeID, err := h.cartScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetShippingMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid shipping method input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.SetShippingMethod(c.Request().Context(), sid, storeID, req.ShippingMethod)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// SetPaymentMethod selects how the order is paid
func (h *CartHandler) SetPaymentMethod(c echo.Context) error {
	sid, storeID, err := h.cartScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment method input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.SetPaymentMethod(c.Request().Context(), sid, storeID, req.PaymentMethod)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// SetCoupon sets or clears the coupon code
func (h *CartHandler) SetCoupon(c echo.Context) error {
	sid, storeID, err := h.cartScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.SetCouponCode(c.Request().Context(), sid, storeID, req.CouponCode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) cartScope(c echo.Context) (string, int64, error) {
	sid, err := sessionID(c)
	if err != nil {
		return "", 0, err
	}

	storeID, err := pathID(c, "storeId")
	if err != nil {
		return "", 0, err
	}

	return sid, storeID, nil
}
