// Package services – HealthTipsService
//
// This file implements the HealthTipsService, the thin orchestration between
// the HTTP boundary and the profile record store for the healthTips
// category. It validates input, applies the configured store timeout, and
// preserves the distinction between "no data yet" (store.ErrNotFound) and a
// store outage (store.ErrUnavailable) so the handler can answer 404 vs 500.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/healthtrack/go-health-backend/internal/domain"
	"github.com/healthtrack/go-health-backend/internal/store"
)

// RecordStore is the persistence contract required by the profile services.
// *store.ProfileRecordStore satisfies it; tests may substitute fakes.
type RecordStore interface {
	// Upsert writes the canonical record for (userID, category).
	Upsert(ctx context.Context, userID, category string, payload any) (string, error)
	// Fetch returns the canonical record, or store.ErrNotFound.
	Fetch(ctx context.Context, userID, category string) (*domain.ProfileRecord, error)
}

// HealthTipsService saves and retrieves the ordered list of health tips kept
// per user. Exactly one record per user exists in the healthTips collection;
// every save replaces the full list.
type HealthTipsService struct {
	// Records is the profile record store.
	Records RecordStore
	// Timeout caps each store round trip. Zero disables the cap.
	Timeout time.Duration
}

// NewHealthTipsService constructs a HealthTipsService with the given store
// and per-call timeout.
func NewHealthTipsService(rs RecordStore, timeout time.Duration) *HealthTipsService {
	return &HealthTipsService{Records: rs, Timeout: timeout}
}

// Save upserts the user's health tips. ErrInvalidInput when userID is blank
// or tips is empty; store.ErrUnavailable when the backend cannot be reached.
func (s *HealthTipsService) Save(ctx context.Context, userID string, tips []string) error {
	if strings.TrimSpace(userID) == "" || len(tips) == 0 {
		return ErrInvalidInput
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.Records.Upsert(ctx, userID, domain.CategoryHealthTips, domain.HealthTips{Tips: tips})
	return err
}

// Get returns the user's health tips. store.ErrNotFound means the user has
// no tips yet; callers must not treat it as a failure.
func (s *HealthTipsService) Get(ctx context.Context, userID string) ([]string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.Records.Fetch(ctx, userID, domain.CategoryHealthTips)
	if err != nil {
		return nil, err
	}
	var payload domain.HealthTips
	if err := json.Unmarshal(rec.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode health tips record %s: %w", rec.ID, err)
	}
	if len(payload.Tips) == 0 {
		// A record with an empty list is indistinguishable from no data
		// for the caller.
		return nil, store.ErrNotFound
	}
	return payload.Tips, nil
}

// withTimeout derives a bounded context when a timeout is configured.
func (s *HealthTipsService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.Timeout)
}
