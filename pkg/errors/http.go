package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered over HTTP.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// Error codes rendered in the error envelope.
const (
	CodeInvalidJSON        = "INVALID_JSON"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeUpstreamError      = "UPSTREAM_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

var (
	ErrMethodNotAllowed   = NewHTTPError(http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed")
	ErrNotFound           = NewHTTPError(http.StatusNotFound, CodeNotFound, "Endpoint not found")
	ErrInvalidJSON        = NewHTTPError(http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON in request body")
	ErrPayloadTooLarge    = NewHTTPError(http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "Request body too large")
	ErrRateLimited        = NewHTTPError(http.StatusTooManyRequests, CodeRateLimited, "Too many requests")
	ErrServiceUnavailable = NewHTTPError(http.StatusServiceUnavailable, CodeServiceUnavailable, "Search service is currently unavailable")
	ErrInternalServer     = NewHTTPError(http.StatusInternalServerError, CodeInternalError, "Internal server error")
)

// BadRequest returns a 400 INVALID_REQUEST error with the given message.
func BadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, CodeInvalidRequest, message)
}

// AsHTTPError unwraps err into an *HTTPError, falling back to ErrInternalServer.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternalServer
}
