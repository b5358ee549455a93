package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// RequestError is the single typed error produced by the gateway. It carries
// the server's human-readable message and, when the failure was HTTP-level,
// the status code. A success=false rejection on a 200 response has Status 200.
type RequestError struct {
	// Message is the server-supplied message when one could be parsed,
	// otherwise a generic "HTTP <status>: <status text>" fallback.
	Message string
	// Status is the HTTP status code of the response, 0 for pure transport
	// failures that never produced a response.
	Status int
}

func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap maps the HTTP status to a status-class sentinel so callers can use
// errors.Is without inspecting codes.
func (e *RequestError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}

func newRequestError(status int, message string) *RequestError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return &RequestError{Message: message, Status: status}
}
