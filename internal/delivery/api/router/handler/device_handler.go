package handler

import (
	"log/slog"
	"net/http"

	"efood/internal/delivery/api/response"
	"efood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice handles device registration for the session
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.DeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), sid, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// ForgetDevice handles removing the session's device
func (h *DeviceHandler) ForgetDevice(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.ForgetDevice(c.Request().Context(), sid); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device removed"})
}
