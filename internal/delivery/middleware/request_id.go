package middleware

import (
	"log/slog"

	deliverycontext "efood/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags each request with an ID, a request-scoped logger and
// the caller headers the order API expects to receive
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process extracts or generates the Request ID and prepares the request context
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := req.Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		ctx = deliverycontext.WithUpstream(ctx, deliverycontext.Upstream{
			Authorization:  req.Header.Get(echo.HeaderAuthorization),
			AcceptLanguage: req.Header.Get(deliverycontext.HeaderAcceptLanguage),
			Location:       req.Header.Get(deliverycontext.HeaderXLocation),
		})
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
