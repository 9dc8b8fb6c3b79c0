package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/healthtrack/go-health-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:store_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestClient(t *testing.T) *SQLiteClient {
	t.Helper()
	return NewSQLiteClient(newTestDB(t))
}

func seedDoc(t *testing.T, c *SQLiteClient, collection, userID string, payload string) *domain.Document {
	t.Helper()
	doc := &domain.Document{
		ID:         uuid.NewString(),
		Collection: collection,
		UserID:     userID,
		Payload:    json.RawMessage(payload),
		CreatedAt:  time.Now().UTC(),
	}
	if err := c.Insert(context.Background(), doc); err != nil {
		t.Fatalf("seed insert: %v", err)
	}
	return doc
}

func TestClient_Get_NotFound(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Get(context.Background(), domain.CategoryHealthTips, uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_InsertGet_RoundTrip(t *testing.T) {
	c := newTestClient(t)
	doc := seedDoc(t, c, domain.CategoryHealthTips, "u1", `{"healthTips":["Drink water"]}`)

	got, err := c.Get(context.Background(), domain.CategoryHealthTips, doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != "u1" || got.Collection != domain.CategoryHealthTips {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.UpdatedAt != nil {
		t.Fatalf("UpdatedAt should be nil before first update, got %v", got.UpdatedAt)
	}
}

func TestClient_Insert_DuplicateID(t *testing.T) {
	c := newTestClient(t)
	doc := seedDoc(t, c, domain.CategoryLifestyle, "u1", `{}`)

	dup := &domain.Document{
		ID:         doc.ID,
		Collection: domain.CategoryLifestyle,
		UserID:     "u1",
		Payload:    json.RawMessage(`{}`),
		CreatedAt:  time.Now().UTC(),
	}
	err := c.Insert(context.Background(), dup)
	if err == nil {
		t.Fatal("expected duplicate insert to fail")
	}
	if !IsDuplicate(err) {
		t.Fatalf("expected IsDuplicate(err)=true, got %v", err)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("driver errors must wrap ErrUnavailable, got %v", err)
	}
}

func TestClient_Find_FiltersByCollectionAndUser(t *testing.T) {
	c := newTestClient(t)
	seedDoc(t, c, domain.CategorySymptoms, "u1", `{"symptoms":["cough"]}`)
	seedDoc(t, c, domain.CategorySymptoms, "u2", `{"symptoms":["fever"]}`)
	seedDoc(t, c, domain.CategoryLifestyle, "u1", `{}`)

	docs, err := c.Find(context.Background(), domain.CategorySymptoms, "u1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].UserID != "u1" || docs[0].Collection != domain.CategorySymptoms {
		t.Fatalf("wrong document returned: %+v", docs[0])
	}
}

func TestClient_Find_EmptyIsNotAnError(t *testing.T) {
	c := newTestClient(t)

	docs, err := c.Find(context.Background(), domain.CategoryHealthTips, "nobody")
	if err != nil {
		t.Fatalf("Find on empty collection: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}

func TestClient_Update_StampsUpdatedAt(t *testing.T) {
	c := newTestClient(t)
	doc := seedDoc(t, c, domain.CategoryHealthTips, "u1", `{"healthTips":["old"]}`)

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := c.Update(context.Background(), domain.CategoryHealthTips, doc.ID, json.RawMessage(`{"healthTips":["new"]}`), ts); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := c.Get(context.Background(), domain.CategoryHealthTips, doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got.Payload) != `{"healthTips":["new"]}` {
		t.Fatalf("payload not replaced: %s", got.Payload)
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(ts) {
		t.Fatalf("UpdatedAt not stamped: %v", got.UpdatedAt)
	}
}

func TestClient_Update_Missing(t *testing.T) {
	c := newTestClient(t)

	err := c.Update(context.Background(), domain.CategoryHealthTips, uuid.NewString(), json.RawMessage(`{}`), time.Now().UTC())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_Delete(t *testing.T) {
	c := newTestClient(t)
	doc := seedDoc(t, c, domain.CategoryMedicalHistory, "u1", `{}`)

	if err := c.Delete(context.Background(), domain.CategoryMedicalHistory, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(context.Background(), domain.CategoryMedicalHistory, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := c.Delete(context.Background(), domain.CategoryMedicalHistory, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestClient_Outage_WrapsErrUnavailable(t *testing.T) {
	db := newTestDB(t)
	c := NewSQLiteClient(db)

	// Simulate a backend outage by closing the underlying pool.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	_ = sqlDB.Close()

	if _, err := c.Find(context.Background(), domain.CategoryHealthTips, "u1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, err := c.Get(context.Background(), domain.CategoryHealthTips, "x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
