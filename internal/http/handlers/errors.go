// Package handlers defines the HTTP-layer error codes used across all API
// endpoints. The codes are lowercase snake_case and stable: clients branch
// on them programmatically, the message text is free to change.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// ErrCodeStoreUnavailable marks 5xx responses caused by the persistence
	// layer rather than the application itself.
	ErrCodeStoreUnavailable = "store_unavailable"
)
