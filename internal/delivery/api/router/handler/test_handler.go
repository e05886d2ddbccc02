package handler

import (
	"net/http"

	"efood/internal/delivery/api/response"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	Publisher service.TrackingEventPublisher
}

// TestHandler injects tracking events during development
type TestHandler struct {
	publisher service.TrackingEventPublisher
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{publisher: params.Publisher}
}

// TrackingEventRequest represents a tracking event to publish for an order
type TrackingEventRequest struct {
	Type      entity.TrackingEventType `json:"type" validate:"required,oneof=driver-location order-status"`
	Latitude  float64                  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64                  `json:"longitude" validate:"gte=-180,lte=180"`
	Status    entity.OrderStatus       `json:"status" validate:"required_if=Type order-status"`
}

// PublishTrackingEvent publishes a driver-location or order-status event
func (h *TestHandler) PublishTrackingEvent(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TrackingEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tracking event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	var event entity.TrackingEvent
	switch req.Type {
	case entity.TrackingEventOrderStatus:
		if !req.Status.IsValid() {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unknown order status"))
		}
		event = entity.NewOrderStatusEvent(orderID, req.Status)
	default:
		event = entity.NewDriverLocationEvent(orderID, req.Latitude, req.Longitude)
	}

	if err := h.publisher.Publish(c.Request().Context(), event); err != nil {
		return errors.Wrap(err, "failed to publish tracking event")
	}

	return response.Success(c, http.StatusAccepted, event)
}
