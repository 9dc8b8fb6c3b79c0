// Package schedule – Repository
//
// This file implements the in-memory appointment repository. Appointments
// are session-scoped: they exist from Add until Remove or process restart,
// with no durable storage behind them. Removal synchronously cancels the
// appointment's reminder job before returning, so a job can never fire for
// an appointment that no longer exists.
package schedule

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack/go-health-backend/internal/domain"
)

// ReminderCanceller is the slice of the scheduler the repository needs:
// cancel any pending job for a removed appointment.
type ReminderCanceller interface {
	Cancel(appointmentID string) bool
}

// Repository holds the session's appointments in insertion order.
// It is safe for concurrent use.
type Repository struct {
	mu        sync.Mutex
	order     []string
	items     map[string]domain.Appointment
	reminders ReminderCanceller
	now       func() time.Time
}

// NewRepository constructs a Repository wired to the given canceller.
// reminders may be nil in tests that do not exercise removal side effects.
func NewRepository(reminders ReminderCanceller) *Repository {
	return &Repository{
		items:     make(map[string]domain.Appointment),
		reminders: reminders,
		now:       time.Now,
	}
}

// Add validates and stores an appointment, assigning it a session-unique
// id. Title, date, and time are required; ErrValidation otherwise. The
// reminder lead is validated here only for sign — scheduling itself is the
// scheduler's job and its failures never undo the add.
func (r *Repository) Add(appt domain.Appointment) (domain.Appointment, error) {
	if strings.TrimSpace(appt.Title) == "" ||
		strings.TrimSpace(appt.Date) == "" ||
		strings.TrimSpace(appt.Time) == "" {
		return domain.Appointment{}, fmt.Errorf("%w: title, date and time are required", ErrValidation)
	}
	if appt.ReminderMinutes < 0 {
		return domain.Appointment{}, fmt.Errorf("%w: reminder minutes must not be negative", ErrValidation)
	}

	appt.ID = uuid.NewString()
	appt.CreatedAt = r.now().UTC()

	r.mu.Lock()
	r.items[appt.ID] = appt
	r.order = append(r.order, appt.ID)
	r.mu.Unlock()

	return appt, nil
}

// Remove deletes the appointment and synchronously cancels its reminder
// job. ErrNotFound when no such appointment exists in this session.
func (r *Repository) Remove(id string) error {
	r.mu.Lock()
	if _, ok := r.items[id]; !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	// Cancel outside the repository lock; the scheduler has its own.
	if r.reminders != nil {
		r.reminders.Cancel(id)
	}
	return nil
}

// Get returns a stored appointment by id.
func (r *Repository) Get(id string) (domain.Appointment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.items[id]
	return appt, ok
}

// List returns all appointments in insertion order.
func (r *Repository) List() []domain.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Appointment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}
