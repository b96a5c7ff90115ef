package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError represents a missing or malformed input field.
// It is always reported to the client and never logged as a server error.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// ConflictError represents a duplicate unique key, e.g. an email that is
// already registered.
type ConflictError struct {
	Resource string
	Message  string
}

// NewConflictError creates a new conflict error.
func NewConflictError(resource, message string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns the HTTP status for this error
func (e *ConflictError) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// NotFoundError represents a record that does not exist.
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// AuthenticationError represents a credential mismatch during login.
type AuthenticationError struct {
	Message string
}

// NewAuthenticationError creates a new authentication error.
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status for this error
func (e *AuthenticationError) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// AccessDeniedError represents a missing credential on a protected route.
// It is reported distinctly from a present-but-invalid token.
type AccessDeniedError struct {
	Message string
}

// NewAccessDeniedError creates a new access denied error.
func NewAccessDeniedError(message string) *AccessDeniedError {
	return &AccessDeniedError{Message: message}
}

// Error implements the error interface
func (e *AccessDeniedError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status for this error
func (e *AccessDeniedError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// InvalidTokenError represents a malformed or unverifiable credential.
// Invalidity means signature or structure failure only, never staleness.
type InvalidTokenError struct {
	Message string
	Err     error
}

// NewInvalidTokenError creates a new invalid token error.
func NewInvalidTokenError(message string, err error) *InvalidTokenError {
	return &InvalidTokenError{Message: message, Err: err}
}

// Error implements the error interface
func (e *InvalidTokenError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InvalidTokenError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *InvalidTokenError) HTTPStatus() int {
	return http.StatusBadRequest
}

// InternalError represents an infrastructure failure. The wrapped cause is
// logged server-side; only the generic message reaches the caller.
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser interface for errors that carry an HTTP status
type HTTPStatuser interface {
	HTTPStatus() int
}

// HTTPStatus resolves the HTTP status for any error in the taxonomy.
// Unknown errors are treated as internal failures.
func HTTPStatus(err error) int {
	var statuser HTTPStatuser
	if errors.As(err, &statuser) {
		return statuser.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

// IsAuthentication reports whether err is an AuthenticationError.
func IsAuthentication(err error) bool {
	var auth *AuthenticationError
	return errors.As(err, &auth)
}
