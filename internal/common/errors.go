// Package common defines shared constants and sentinel errors used across
// the console packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Flow-control errors.
	ErrBusy         = errors.New("operation already in progress")
	ErrInvalidState = errors.New("invalid state")

	// Validation errors.
	ErrValidation = errors.New("validation error")
)

// UnknownErrorMessage is surfaced when a failure payload carries no usable message.
const UnknownErrorMessage = "unknown error"
