package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "vidgate/internal/delivery/context"
	"vidgate/internal/delivery/http/response"
	domainerrors "vidgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Path()),
				slog.Any("error", err),
			)
		}

		m.send(logger, response.AppError(c, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.send(logger, response.Error(c, httpErr.Code, "HTTP_ERROR", message, message))

		return
	}

	// Unknown errors are logged in full and answered generically
	logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	m.send(logger, response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()))
}

func (m *ErrorMiddleware) send(logger *slog.Logger, err error) {
	if err != nil {
		logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
