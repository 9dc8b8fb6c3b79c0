// Package schedule manages the session-scoped appointment list and the
// reminder jobs derived from it. This file centralizes the error values the
// package returns for predictable cases so callers can map them to HTTP
// results consistently.
package schedule

import "errors"

var (
	// ErrValidation is returned when an appointment is missing its title,
	// date, or time, when the date/time strings cannot be parsed, or when
	// the reminder lead time is negative. Rejected locally.
	ErrValidation = errors.New("invalid appointment")

	// ErrNotFound is returned when the referenced appointment does not
	// exist in this session.
	ErrNotFound = errors.New("appointment not found")

	// ErrPastTrigger is returned when the computed fire time is not in the
	// future. The reminder is rejected with no side effect; guessing
	// between firing immediately and dropping silently is exactly the
	// ambiguity this error removes.
	ErrPastTrigger = errors.New("reminder fire time is in the past")

	// ErrPermissionDenied is returned when notification permission has not
	// been granted. The appointment itself is still kept; only the
	// reminder is refused.
	ErrPermissionDenied = errors.New("notification permission not granted")
)
