package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrUnauthenticated is returned when a protected route is called without a bearer token.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidToken is returned for any token that fails signature, format or expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNotOwner is returned when the requester does not own the review being mutated.
	ErrNotOwner = errors.New("you do not have permission to modify this burrito review")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
	// ErrBurritoNotFound is returned when a burrito review is not found.
	ErrBurritoNotFound = errors.New("burrito review not found")
	// ErrIncorrectPassword is returned by login when the password does not match.
	ErrIncorrectPassword = errors.New("Incorrect password")
	// ErrInvalidCurrentPassword is returned by a password change with a wrong current password.
	ErrInvalidCurrentPassword = errors.New("Invalid current password")
	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already exists")
	// ErrInvalidUpdates is returned when a profile update names a field that cannot be changed.
	ErrInvalidUpdates = errors.New("Invalid updates!")
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when an entity fails validation before persistence.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		httpErr := NewHTTPError(http.StatusBadRequest, "validation failed", "VALIDATION_ERROR")
		httpErr.Fields = verr.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusForbidden, ErrInvalidToken.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, ErrNotOwner.Error(), "NOT_OWNER")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrBurritoNotFound):
		return NewHTTPError(http.StatusNotFound, ErrBurritoNotFound.Error(), "BURRITO_NOT_FOUND")
	case errors.Is(err, ErrInvalidCurrentPassword):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidCurrentPassword.Error(), "INVALID_CURRENT_PASSWORD")
	case errors.Is(err, ErrInvalidUpdates):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidUpdates.Error(), "INVALID_UPDATES")
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusConflict, ErrDuplicateUser.Error(), "USER_ALREADY_EXISTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
