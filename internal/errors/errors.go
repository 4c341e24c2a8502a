package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrResourceNotFound is returned when a resource is not found.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrEmailTaken is returned when signing up with an email already in use.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a bearer token is missing, expired, or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidResourceType is returned when a resource type is not book/course/other.
	ErrInvalidResourceType = errors.New("invalid resource type")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
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
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrResourceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RESOURCE_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidResourceType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RESOURCE_TYPE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
