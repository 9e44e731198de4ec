package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates the requested entity does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrConflict indicates a uniqueness or already-in-state violation
	ErrConflict = errors.New("resource conflict")
)

// ValidationError indicates malformed or missing input. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthError indicates the payment provider rejected our credentials
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("gateway authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UnavailableError indicates a network or timeout failure talking to the
// provider. Safe for the caller to retry; must never be treated as settlement.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("gateway unavailable during %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// GatewayError carries a structured failure returned by the provider
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %s: %s", e.Code, e.Message)
}

// HTTPStatus maps an error from the taxonomy to the HTTP status the API
// surfaces for it. Unknown errors map to 500.
func HTTPStatus(err error) int {
	var (
		validationErr  *ValidationError
		authErr        *AuthError
		unavailableErr *UnavailableError
		gatewayErr     *GatewayError
	)

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		return http.StatusBadGateway
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &gatewayErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
