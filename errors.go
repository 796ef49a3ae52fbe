package turbo

import "errors"

// Sentinel errors for the status vocabulary this layer names. Handlers and
// extractors may return them (wrapped or bare) to signal well-known
// conditions; readiness checks return ErrServiceUnavailable when the unit
// cannot accept work.
var (
	// ErrBadRequest indicates the request could not be understood (400)
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound indicates the resource was not found (404)
	ErrNotFound = errors.New("not found")

	// ErrInternalServer indicates an unexpected failure during handling (500)
	ErrInternalServer = errors.New("internal server error")

	// ErrServiceUnavailable indicates the unit is temporarily not ready (503)
	ErrServiceUnavailable = errors.New("service unavailable")
)
