package middleware

import (
	"log/slog"
	"strconv"

	deliverycontext "vidgate/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger.
// It runs after routing, so per-user routes also carry the parsed user id.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process handles the generation or extraction of the Request ID and creates a logger with requestID
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Attempt to get Request ID from request headers
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)

		// Generate a new Request ID if not provided by the client
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Store Request ID in echo.Context for response use
		deliverycontext.SetRequestID(c, requestID)

		// Add Request ID to response headers
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		// Create a child logger with requestID, and the target user on per-user routes
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		reqLogger := m.logger.With(slog.String("request_id", requestID))
		if userID, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil && userID > 0 {
			ctx = deliverycontext.WithUserID(ctx, userID)
			reqLogger = reqLogger.With(slog.Int64("user_id", userID))
		}

		// Store logger in context.Context for service layer use
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
