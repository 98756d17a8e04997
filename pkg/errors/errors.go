package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound    = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation  = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal    = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrUnavailable = New("STORE_UNAVAILABLE", http.StatusServiceUnavailable, "store unreachable")

	// ErrMalformedAIResponse signals that the model output could not be
	// decoded into the expected structure. Never retried.
	ErrMalformedAIResponse = New("MALFORMED_AI_RESPONSE", http.StatusBadGateway, "AI returned a response in an invalid format")

	// ErrUpstream covers failed calls to the generative model service.
	ErrUpstream = New("AI_UPSTREAM_ERROR", http.StatusBadGateway, "AI service call failed")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// IsRetriable reports whether a client should retry the request. Only
// infrastructure-class failures (5xx) qualify; validation errors never do.
func IsRetriable(err error) bool {
	e := FromError(err)
	if e == nil {
		return false
	}
	return e.Status >= http.StatusInternalServerError
}
