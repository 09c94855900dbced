package errors

import (
	"net/http"

	"vidgate/internal/errors"
)

// Kind groups errors by how the caller should react to them.
type Kind string

const (
	// KindInput is malformed user input, the user can correct it.
	KindInput Kind = "input"
	// KindExternalRejection is a refusal by the external login service, the user must restart.
	KindExternalRejection Kind = "external_rejection"
	// KindTransient is a connectivity failure, the user must restart.
	KindTransient Kind = "transient"
	// KindMisuse is a command issued in the wrong state, safe to ignore.
	KindMisuse Kind = "misuse"
	// KindStore is a persistence failure.
	KindStore Kind = "store"
	// KindInternal is anything else.
	KindInternal Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind        // Reaction class
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	kind      Kind
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
		kind:      kind,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithCause keeps the error matchable with errors.Is while carrying the underlying cause.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return errors.WithStack(e)
	}

	return errors.WithStack(&causedError{BaseError: e, cause: cause})
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the reaction class
func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		kind:      e.kind,
	}
}

// Is matches errors carrying the same business code, so WithDetails copies still match.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.message + ": " + e.cause.Error()
}

func (e *causedError) Details() string {
	return e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	return []error{e.BaseError, e.cause}
}

// Predefined error types
var (
	// Login input errors
	ErrInvalidPhoneNumber = NewBaseError(
		KindInput,
		http.StatusBadRequest,
		"INVALID_PHONE_NUMBER",
		"The phone number is invalid, send /login to try again",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindInput,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// External rejections
	ErrInvalidCode = NewBaseError(
		KindExternalRejection,
		http.StatusUnprocessableEntity,
		"INVALID_CODE",
		"The code is incorrect, send /login to get a new one",
		"",
	)

	ErrExpiredCode = NewBaseError(
		KindExternalRejection,
		http.StatusUnprocessableEntity,
		"EXPIRED_CODE",
		"The code has expired, send /login to start over",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		KindExternalRejection,
		http.StatusUnprocessableEntity,
		"INCORRECT_PASSWORD",
		"The password is incorrect, send /login to start over",
		"",
	)

	// Connectivity
	ErrTransientNetwork = NewBaseError(
		KindTransient,
		http.StatusServiceUnavailable,
		"TRANSIENT_NETWORK",
		"Could not reach the login service, send /login to try again",
		"",
	)

	// Caller misuse
	ErrAlreadyAuthenticated = NewBaseError(
		KindMisuse,
		http.StatusConflict,
		"ALREADY_AUTHENTICATED",
		"You are already logged in",
		"",
	)

	ErrNoActiveSession = NewBaseError(
		KindMisuse,
		http.StatusConflict,
		"NO_ACTIVE_SESSION",
		"There is no login in progress",
		"",
	)

	ErrWrongStep = NewBaseError(
		KindMisuse,
		http.StatusConflict,
		"WRONG_STEP",
		"That input is not expected at this step",
		"",
	)

	ErrStepInProgress = NewBaseError(
		KindMisuse,
		http.StatusConflict,
		"STEP_IN_PROGRESS",
		"Still working on your previous message",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		KindMisuse,
		http.StatusConflict,
		"NOT_LOGGED_IN",
		"You are not logged in",
		"",
	)

	// Persistence
	ErrCredentialSave = NewBaseError(
		KindStore,
		http.StatusInternalServerError,
		"CREDENTIAL_SAVE_FAILED",
		"Could not save your login, send /login to try again",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		KindStore,
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// Content delivery
	ErrNoContent = NewBaseError(
		KindInternal,
		http.StatusNotFound,
		"NO_CONTENT",
		"No videos found",
		"",
	)

	ErrDeliveryFailed = NewBaseError(
		KindTransient,
		http.StatusBadGateway,
		"DELIVERY_FAILED",
		"Could not deliver the video, please try again",
		"",
	)

	ErrUserBusy = NewBaseError(
		KindMisuse,
		http.StatusTooManyRequests,
		"USER_BUSY",
		"Your previous request is still running",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		KindMisuse,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid service token",
		"",
	)

	ErrForbidden = NewBaseError(
		KindMisuse,
		http.StatusForbidden,
		"FORBIDDEN",
		"The service token lacks the required scope",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// KindOf reports the reaction class of err, KindInternal when it is not an AppError.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Kind returns the reaction class
func (e *DatabaseExecuteError) Kind() Kind {
	return KindStore
}
