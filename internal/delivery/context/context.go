// Package context carries request-scoped values between the HTTP layer and the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeySessionID is the key for storing the cart session ID in context.
	KeySessionID ContextKey = "session_id"

	// KeyUpstream is the key for storing headers forwarded to the order API.
	KeyUpstream ContextKey = "upstream"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderXCartSession is the HTTP header name for the cart-session token.
	HeaderXCartSession = "X-Cart-Session"

	// HeaderAcceptLanguage is forwarded to the order API.
	HeaderAcceptLanguage = "Accept-Language"

	// HeaderXLocation carries the customer's "lat,lng" to the order API.
	HeaderXLocation = "X-Location"
)

// Upstream holds the caller headers passed through to the order API untouched.
type Upstream struct {
	Authorization  string
	AcceptLanguage string
	Location       string
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetSessionID returns the cart session ID set by the session middleware.
func GetSessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(string(KeySessionID)).(string)

	return id, ok && id != ""
}

// SetSessionID stores the cart session ID in echo.Context.
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(string(KeySessionID), sessionID)
}

// WithUpstream returns a new context carrying headers for the order API.
func WithUpstream(ctx context.Context, upstream Upstream) context.Context {
	return context.WithValue(ctx, KeyUpstream, upstream)
}

// GetUpstream returns the forwarded headers, or the zero value.
func GetUpstream(ctx context.Context) Upstream {
	upstream, _ := ctx.Value(KeyUpstream).(Upstream)

	return upstream
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
