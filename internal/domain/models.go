// Package domain defines the persistence models and value objects for the
// health-tracking backend: the schemaless Document envelope stored per user
// and category, the typed category payloads, and the in-memory appointment
// and reminder types.
package domain

import (
	"encoding/json"
	"time"
)

// Category names double as document collections. They mirror the mobile
// client's data screens: one canonical record per user per category.
const (
	CategoryHealthTips     = "healthTips"
	CategoryLifestyle      = "lifestyle"
	CategoryMedicalHistory = "medicalHistory"
	CategorySymptoms       = "symptoms"
)

// Categories lists every known category in a stable order.
func Categories() []string {
	return []string{
		CategoryHealthTips,
		CategoryLifestyle,
		CategoryMedicalHistory,
		CategorySymptoms,
	}
}

// Document is a schemaless record stored under an opaque id within a named
// collection. The payload is kept as raw JSON; interpretation belongs to the
// typed category structs below.
//
// Fields:
//   - ID: stable UUID primary key (char(36)). For profile records this is a
//     deterministic UUIDv5 of (userID, collection), which makes creation
//     naturally idempotent.
//   - Collection: the logical collection name (see category constants).
//   - UserID: identifier of the owning user; indexed together with the
//     collection for per-user lookups. There is intentionally no unique
//     constraint on (collection, user_id); uniqueness comes from the
//     deterministic record id.
//   - Payload: the category-specific JSON object, replaced wholesale on
//     every update (no field-level merge).
//   - CreatedAt: set once on first write.
//   - UpdatedAt: nil until the record is updated for the first time.
type Document struct {
	ID         string          `json:"id"         gorm:"type:char(36);primaryKey"`
	Collection string          `json:"collection" gorm:"type:varchar(64);not null;index:idx_collection_user,priority:1"`
	UserID     string          `json:"userId"     gorm:"type:varchar(64);not null;index:idx_collection_user,priority:2"`
	Payload    json.RawMessage `json:"payload"    gorm:"type:text;not null"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty"`
}

// TableName returns the database table name for Document.
func (Document) TableName() string { return "documents" }

// ProfileRecord is the logical view of a Document scoped to a user and
// category. It is what the record store hands to services: the raw payload
// plus the envelope metadata.
type ProfileRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Category  string          `json:"category"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// HealthTips is the payload stored under the healthTips category.
type HealthTips struct {
	Tips []string `json:"healthTips"`
}

// Lifestyle is the payload stored under the lifestyle category. Values come
// from the client's lifestyle picker ("Sedentary", "Active", ...) with a
// free-text description when "Other" is selected.
type Lifestyle struct {
	Lifestyle         string `json:"lifestyle"`
	ExerciseFrequency string `json:"exerciseFrequency,omitempty"`
}

// MedicalHistory is the payload stored under the medicalHistory category.
type MedicalHistory struct {
	History   string   `json:"medicalHistory"`
	Allergies []string `json:"allergies,omitempty"`
}

// Symptoms is the payload stored under the symptoms category.
type Symptoms struct {
	Symptoms []string `json:"symptoms"`
}

// Appointment is a user-created appointment. It lives only in the in-memory
// repository for the duration of the process; there is no durable storage.
//
// Date and Time are kept as the client-entered strings ("2006-01-02" and
// "15:04" or "03:04 PM"); the scheduler parses and combines them when a
// reminder is requested. ReminderMinutes is the lead time before the
// appointment at which the reminder should fire; zero means no reminder.
type Appointment struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	ReminderMinutes int       `json:"reminderMinutes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReminderJob is a scheduled one-shot notification derived from an
// appointment. It exists from the moment scheduling succeeds until the
// appointment is deleted or the job fires.
type ReminderJob struct {
	AppointmentID string    `json:"appointmentId"`
	FireAt        time.Time `json:"fireAt"`
	Delivered     bool      `json:"delivered"`
}
