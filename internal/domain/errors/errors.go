package errors

import (
	"net/http"

	"kda/internal/errors"
)

// ErrorType classifies an error for the response envelope.
type ErrorType string

const (
	// TypeError covers domain and HTTP-level failures.
	TypeError ErrorType = "error"
	// TypeSchema covers request schema validation failures.
	TypeSchema ErrorType = "schema"
	// TypeDatabase covers failures surfaced by the relational store.
	TypeDatabase ErrorType = "database"
	// TypeUpload covers file upload failures.
	TypeUpload ErrorType = "upload"
	// TypeUnknown covers anything uncaught.
	TypeUnknown ErrorType = "unknown"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int       // HTTP status code
	ErrorCode() string   // Business error code
	Message() string     // User-friendly error message
	Type() ErrorType     // Envelope error type
	Details() string     // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	errType   ErrorType
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		errType:   TypeError,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Type returns the envelope error type.
func (e *BaseError) Type() ErrorType {
	return e.errType
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithMessage returns a copy of the error with a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	clone := *e
	clone.message = message

	return &clone
}

// WithDetails returns a copy of the error with detailed error information attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Predefined error types
var (
	// ErrUnauthorized is returned when a request lacks a usable identity
	// where one is required.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
	)

	// ErrConflict is returned when a unique identity field is already taken.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource already exists",
	)

	// ErrUsernameTaken is the registration-specific duplicate username conflict.
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"username already registered",
	)

	// ErrEmailTaken is the registration-specific duplicate email conflict.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"email address already registered",
	)

	// ErrInvalidCredentials is returned when a login carries an unknown
	// username or a wrong password; the two cases are indistinguishable.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CREDENTIALS",
		"Username or password wrong..!",
	)

	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
	)

	// ErrInternalError covers unexpected internal failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
	)
)

// ValidationError reports a request schema violation: the first offending
// field plus the full issue list.
type ValidationError struct {
	issues []ValidationIssue
}

// ValidationIssue describes one failed field.
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// NewValidationError creates a schema validation error from its issues.
// At least one issue is expected.
func NewValidationError(issues ...ValidationIssue) *ValidationError {
	return &ValidationError{issues: issues}
}

// Error implements the error interface, reporting the first issue the way
// the boundary surfaces it.
func (e *ValidationError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code.
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code.
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message reports the first offending field and its message.
func (e *ValidationError) Message() string {
	if len(e.issues) == 0 {
		return "validation failed"
	}

	return e.issues[0].Path + " " + e.issues[0].Message
}

// Type returns the envelope error type.
func (e *ValidationError) Type() ErrorType {
	return TypeSchema
}

// Details returns detailed error information.
func (e *ValidationError) Details() string {
	return ""
}

// Issues returns every failed field.
func (e *ValidationError) Issues() []ValidationIssue {
	return e.issues
}

// DatabaseExecuteError represents a store execution error, implementing
// the AppError interface. Uncaught constraint failures (e.g. the
// registration duplicate race hitting the unique index) land here rather
// than crashing the process.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Type returns the envelope error type.
func (e *DatabaseExecuteError) Type() ErrorType {
	return TypeDatabase
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying store error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
