package response

import (
	"net/http"

	deliverycontext "vidgate/internal/delivery/context"
	domainerrors "vidgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`    // HTTP status code
	Message   string     `json:"message"` // User-facing message, safe to relay to the chat
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "WRONG_STEP"
	Kind    string `json:"kind,omitempty"`    // How the caller should react
	Details string `json:"details,omitempty"` // Detailed error description, never set for 5xx
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	return write(c, statusCode, message, &ErrorInfo{
		Code:    errorCode,
		Details: details,
	})
}

// AppError renders a domain error with its kind.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return write(c, appErr.HTTPCode(), appErr.Message(), &ErrorInfo{
		Code:    appErr.ErrorCode(),
		Kind:    string(appErr.Kind()),
		Details: appErr.Details(),
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

func write(c echo.Context, statusCode int, message string, info *ErrorInfo) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		info.Details = ""
	}

	return c.JSON(statusCode, Response{
		Success:   false,
		Code:      statusCode,
		Message:   message,
		Error:     info,
		RequestID: requestID(c),
	})
}

func requestID(c echo.Context) string {
	return deliverycontext.GetRequestIDFromContext(c.Request().Context())
}
