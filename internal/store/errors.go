package store

import "errors"

// Error kinds the HTTP layer maps to status codes. Anything that matches
// neither becomes a generic 500.
var (
	// ErrNotFound means no document matched an identifier-based lookup or
	// mutation.
	ErrNotFound = errors.New("document not found")

	// ErrWriteFailed means an insert was not acknowledged with an assigned
	// identifier.
	ErrWriteFailed = errors.New("write not acknowledged")
)
