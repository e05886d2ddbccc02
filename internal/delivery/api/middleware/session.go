// Package middleware holds the echo middleware specific to the public API.
package middleware

import (
	"log/slog"

	deliverycontext "efood/internal/delivery/context"
	"efood/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware resolves the cart session of each request from the
// X-Cart-Session header and answers with a refreshed token.
type SessionMiddleware struct {
	tokens service.SessionTokenService
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(tokens service.SessionTokenService, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// Handle starts a new session when the header is missing or does not verify.
// Every response carries a token whose expiry restarts with the request.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := m.resolve(c)

		token, err := m.tokens.Issue(sessionID)
		if err != nil {
			return errors.Wrap(err, "failed to issue session token")
		}

		deliverycontext.SetSessionID(c, sessionID)
		c.Response().Header().Set(deliverycontext.HeaderXCartSession, token)

		return next(c)
	}
}

func (m *SessionMiddleware) resolve(c echo.Context) string {
	token := c.Request().Header.Get(deliverycontext.HeaderXCartSession)
	if token == "" {
		return uuid.NewString()
	}

	sessionID, err := m.tokens.Parse(token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Info("Starting a new cart session", slog.String("reason", err.Error()))

		return uuid.NewString()
	}

	return sessionID
}

// GetSessionID returns the cart session of the request.
func GetSessionID(c echo.Context) (string, bool) {
	return deliverycontext.GetSessionID(c)
}
