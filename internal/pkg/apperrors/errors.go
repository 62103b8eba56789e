package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound              = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidPassword  = errors.New("password does not meet minimum requirements")
	ErrBadRequest       = errors.New("bad request")

	// Federated login errors
	ErrProviderError = errors.New("identity provider error")
)

// Course errors
var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrSlugAlreadyExists = errors.New("a course with this slug already exists")
	ErrInvalidDiscount   = errors.New("discount price must not exceed the list price")
)

// CustomError wraps a sentinel error with a human-readable message.
// errors.Is still matches the wrapped sentinel.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewProviderError creates a federated-login provider error with a message
func NewProviderError(message string) error {
	return &CustomError{Err: ErrProviderError, Message: message}
}
