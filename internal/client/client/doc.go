// Package client talks to the store-rating REST API.
//
// # Overview
//
// The Client interface lists one method per API endpoint. HTTPClient is the
// net/http implementation: it injects the bearer token of the current
// session, tags each request with an X-Request-ID, throttles outbound calls
// and unwraps the {resultCode, resultMessage, resultData} envelope.
//
// # Error Handling
//
// Transport conditions are sentinel errors matched with errors.Is:
// ErrUnavailable, ErrUnauthorized, ErrUnexpectedStatus and
// ErrMalformedResponse. Failures reported by the API itself are *APIError
// values (errors.As) carrying the server's message verbatim.
//
// An HTTP 401 clears the session and fires the OnUnauthorized hook before
// ErrUnauthorized is returned, so callers never keep a rejected token.
package client
