package ports

import "errors"

// Infrastructure errors for the adapter layer.
//
// These errors represent transport/remote concerns and are separate from the
// domain validation errors, which represent malformed write intents caught
// before any request is issued.
//
// Usage:
//   - Adapters return these when a remote call fails
//   - The domain layer never imports or uses these errors
//   - Flows catch them and translate to operator-facing notices

// ErrNotFound indicates the remote API answered 404 for the requested
// resource (unknown order, delivery, or postal code).
var ErrNotFound = errors.New("resource not found")

// ErrUnauthorized indicates the remote API rejected the bearer token (401).
// The gateway observes and logs this but never redirects; the caller decides.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRemoteUnavailable indicates the remote API could not serve the request
// (network failure, timeout, or a 5xx answer).
var ErrRemoteUnavailable = errors.New("remote API unavailable")

// Compile-time check that errors implement error interface
var (
	_ error = ErrNotFound
	_ error = ErrUnauthorized
	_ error = ErrRemoteUnavailable
)
