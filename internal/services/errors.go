// Package services defines the business logic for user profile data
// (health tips, lifestyle, medical history, symptoms). This file centralizes
// common service-level error values so that they can be consistently
// returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer; store-level sentinels (store.ErrNotFound,
// store.ErrUnavailable) pass through untouched so handlers can branch on
// them with errors.Is.
package services

import "errors"

// ErrInvalidInput is returned when a save request is missing its user id or
// payload. Rejected locally; the store is never contacted.
var ErrInvalidInput = errors.New("invalid input")
