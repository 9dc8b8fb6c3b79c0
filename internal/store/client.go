// Package store implements the document persistence layer, backed by GORM.
// This file defines the Client capability — query, create, update, delete of
// schemaless documents keyed by an opaque id — and its SQLite implementation.
//
// Error semantics:
//   - A missing document is reported as ErrNotFound. Absence is a valid
//     result for callers, not a failure.
//   - Every other driver error (connectivity, timeout, constraint) is
//     wrapped in ErrUnavailable with the underlying cause attached, so
//     callers can test with errors.Is(err, store.ErrUnavailable) and still
//     log the root cause. No retries happen at this layer.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/healthtrack/go-health-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable is returned when the backing store cannot be reached
	// or fails mid-operation. The underlying cause is wrapped.
	ErrUnavailable = errors.New("store unavailable")
)

// Client is the abstract document-store capability. The store is a flat,
// schemaless set of collections with no native secondary-key uniqueness;
// anything stronger (one record per user per category) is layered on top by
// ProfileRecordStore.
//
// Implementations must honor the context for cancellation and deadlines and
// must translate failures into ErrNotFound / ErrUnavailable.
type Client interface {
	// Get fetches a single document by collection and id.
	Get(ctx context.Context, collection, id string) (*domain.Document, error)

	// Find returns all documents in a collection owned by userID, oldest
	// first. An empty result is not an error.
	Find(ctx context.Context, collection, userID string) ([]domain.Document, error)

	// Insert stores a new document. Inserting an id that already exists
	// fails with the driver's uniqueness error wrapped in ErrUnavailable;
	// use IsDuplicate to detect that case.
	Insert(ctx context.Context, doc *domain.Document) error

	// Update replaces the payload of an existing document and stamps
	// updated_at. A missing document is reported as ErrNotFound.
	Update(ctx context.Context, collection, id string, payload json.RawMessage, updatedAt time.Time) error

	// Delete removes a document by id. Deleting a missing document is
	// ErrNotFound.
	Delete(ctx context.Context, collection, id string) error
}

// SQLiteClient is the GORM-backed Client used in production and tests.
type SQLiteClient struct {
	DB *gorm.DB
}

// NewSQLiteClient wraps a GORM handle in a Client.
func NewSQLiteClient(db *gorm.DB) *SQLiteClient {
	return &SQLiteClient{DB: db}
}

// Get implements Client.
func (c *SQLiteClient) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	var doc domain.Document
	err := c.DB.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&doc).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

// Find implements Client.
func (c *SQLiteClient) Find(ctx context.Context, collection, userID string) ([]domain.Document, error) {
	var out []domain.Document
	err := c.DB.WithContext(ctx).
		Where("collection = ? AND user_id = ?", collection, userID).
		Order("created_at asc").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Insert implements Client.
func (c *SQLiteClient) Insert(ctx context.Context, doc *domain.Document) error {
	if err := c.DB.WithContext(ctx).Create(doc).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update implements Client.
func (c *SQLiteClient) Update(ctx context.Context, collection, id string, payload json.RawMessage, updatedAt time.Time) error {
	res := c.DB.WithContext(ctx).
		Model(&domain.Document{}).
		Where("collection = ? AND id = ?", collection, id).
		Updates(map[string]any{
			"payload":    string(payload),
			"updated_at": updatedAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete implements Client.
func (c *SQLiteClient) Delete(ctx context.Context, collection, id string) error {
	res := c.DB.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&domain.Document{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps raw driver errors onto the store taxonomy. Record-not-found
// stays a distinct sentinel; everything else (including context deadline, a
// closed pool, a locked file) is a store outage from the caller's view.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// IsDuplicate reports whether an Insert failed because the document id
// already exists. SQLite reports "UNIQUE constraint failed"; other engines
// say "duplicate key".
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
