package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a failure reported by the API in the response envelope.
type APIError struct {
	// Status is the HTTP status of the response.
	Status int
	// Code is the envelope resultCode; always nonzero.
	Code int64
	// Message is resultMessage, or common.UnknownErrorMessage when absent.
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// String includes the codes, for logs.
func (e *APIError) String() string {
	return fmt.Sprintf("api error (status %d, code %d): %s", e.Status, e.Code, e.Message)
}
