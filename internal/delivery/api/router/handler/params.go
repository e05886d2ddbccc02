package handler

import (
	"strconv"

	"efood/internal/delivery/api/middleware"
	domainerrors "efood/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

func sessionID(c echo.Context) (string, error) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		return "", domainerrors.ErrSessionInvalid
	}

	return id, nil
}
