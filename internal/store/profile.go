// Package store implements the document persistence layer, backed by GORM.
// This file provides ProfileRecordStore, which maintains exactly one
// canonical record per (userID, category) pair on top of a Client that has
// no native secondary-key uniqueness.
//
// The historical implementation did this with a query-then-write sequence:
// look for an existing record, then branch to create or update. Two
// concurrent first writes could both observe "no record" and both create
// one. This store removes that race by deriving the record id
// deterministically from (userID, category) — creation becomes
// create-if-absent at a fixed key, so a concurrent loser simply falls
// through to the update path.
//
// Usage:
//
//	rs := store.NewProfileRecordStore(client)
//	id, err := rs.Upsert(ctx, "u1", domain.CategoryHealthTips, domain.HealthTips{Tips: tips})
//	rec, err := rs.Fetch(ctx, "u1", domain.CategoryHealthTips)
//	if errors.Is(err, store.ErrNotFound) {
//	    // no data yet — not a failure
//	}
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/healthtrack/go-health-backend/internal/domain"
)

// recordNamespace is the fixed UUIDv5 namespace for profile record ids.
// Changing it would orphan every existing record, so it never changes.
var recordNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // RFC 4122 namespace DNS

// RecordID derives the deterministic document id for a (userID, category)
// pair. Equal inputs always yield the same id, which is what makes Upsert
// idempotent and race-free on first write.
func RecordID(userID, category string) string {
	return uuid.NewSHA1(recordNamespace, []byte(userID+"/"+category)).String()
}

// ProfileRecordStore provides idempotent upsert and fetch of one logical
// record per user per category. It is safe for concurrent use; all state
// lives in the underlying Client.
type ProfileRecordStore struct {
	client Client
	now    func() time.Time
}

// NewProfileRecordStore wraps a Client.
func NewProfileRecordStore(c Client) *ProfileRecordStore {
	return &ProfileRecordStore{client: c, now: time.Now}
}

// Upsert writes payload as the canonical record for (userID, category) and
// returns the record id. On first write the record is created with
// createdAt; on every later write the payload is replaced wholesale and
// updatedAt is stamped. Absence of an existing record is the create path,
// never an error.
//
// payload may be any JSON-marshalable value; typed category structs from the
// domain package are the expected callers' choice.
func (s *ProfileRecordStore) Upsert(ctx context.Context, userID, category string, payload any) (string, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(category) == "" {
		return "", fmt.Errorf("upsert: userID and category are required")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("upsert: encode payload: %w", err)
	}

	id := RecordID(userID, category)

	_, err = s.client.Get(ctx, category, id)
	switch {
	case err == nil:
		// Existing record: replace payload, stamp updatedAt.
		if err := s.client.Update(ctx, category, id, raw, s.now().UTC()); err != nil {
			return "", err
		}
		return id, nil

	case errors.Is(err, ErrNotFound):
		doc := &domain.Document{
			ID:         id,
			Collection: category,
			UserID:     userID,
			Payload:    raw,
			CreatedAt:  s.now().UTC(),
		}
		insErr := s.client.Insert(ctx, doc)
		if insErr == nil {
			return id, nil
		}
		// A concurrent upsert won the create at the same key. Fall back
		// to update; the invariant holds either way.
		if IsDuplicate(insErr) {
			if err := s.client.Update(ctx, category, id, raw, s.now().UTC()); err != nil {
				return "", err
			}
			return id, nil
		}
		return "", insErr

	default:
		return "", err
	}
}

// Fetch returns the canonical record for (userID, category), or ErrNotFound
// when the user has no data yet. Callers must treat ErrNotFound as a valid
// "no data" result, not a failure to surface.
//
// More than one matching record can only exist as a leftover of the old
// query-then-write scheme; the first (oldest) record wins and the anomaly is
// logged so an operator can clean up with DeleteByID.
func (s *ProfileRecordStore) Fetch(ctx context.Context, userID, category string) (*domain.ProfileRecord, error) {
	docs, err := s.client.Find(ctx, category, userID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	if len(docs) > 1 {
		log.Warn().
			Str("user_id", userID).
			Str("category", category).
			Int("count", len(docs)).
			Msg("duplicate profile records; returning oldest")
	}
	return asRecord(&docs[0]), nil
}

// FetchByID returns a single record by its document id, bypassing the
// per-user lookup. Generic escape hatch shared by all categories.
func (s *ProfileRecordStore) FetchByID(ctx context.Context, category, id string) (*domain.ProfileRecord, error) {
	doc, err := s.client.Get(ctx, category, id)
	if err != nil {
		return nil, err
	}
	return asRecord(doc), nil
}

// UpdateByID replaces the payload of the record with the given id and stamps
// updatedAt. ErrNotFound when no such record exists.
func (s *ProfileRecordStore) UpdateByID(ctx context.Context, category, id string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("update: encode payload: %w", err)
	}
	return s.client.Update(ctx, category, id, raw, s.now().UTC())
}

// DeleteByID removes the record with the given id. Deletion is an explicit
// operator action; records are never deleted automatically.
func (s *ProfileRecordStore) DeleteByID(ctx context.Context, category, id string) error {
	return s.client.Delete(ctx, category, id)
}

// asRecord converts the stored envelope into the logical record view.
func asRecord(doc *domain.Document) *domain.ProfileRecord {
	return &domain.ProfileRecord{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Category:  doc.Collection,
		Payload:   doc.Payload,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
