// Appointment HTTP handlers.
//
// Creating an appointment also attempts to arm its local reminder; the
// response reports the reminder outcome alongside the stored appointment so
// clients can surface permission or validation problems without a second
// round trip.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/go-health-backend/internal/domain"
	"github.com/healthtrack/go-health-backend/internal/schedule"
	"github.com/healthtrack/go-health-backend/internal/utils"
)

// AppointmentRepository is the in-memory appointment book consumed by the
// HTTP handlers.
type AppointmentRepository interface {
	Add(appt domain.Appointment) (domain.Appointment, error)
	Remove(id string) error
	Get(id string) (domain.Appointment, bool)
	List() []domain.Appointment
}

// ReminderScheduler arms and disarms local notification reminders.
type ReminderScheduler interface {
	Schedule(appt domain.Appointment) (*domain.ReminderJob, error)
	Cancel(appointmentID string) bool
}

// Reminder status values reported on appointment creation.
const (
	ReminderScheduled        = "scheduled"
	ReminderNone             = "none"
	ReminderPastTrigger      = "past_trigger"
	ReminderPermissionDenied = "permission_denied"
	ReminderFailed           = "failed"
)

// CreateAppointmentRequest is the JSON payload for creating an appointment.
type CreateAppointmentRequest struct {
	Title           string `json:"title" binding:"required" example:"Dentist"`
	Date            string `json:"date" binding:"required" example:"2026-09-14"`
	Time            string `json:"time" binding:"required" example:"14:00"`
	ReminderMinutes int    `json:"reminderMinutes" example:"15"`
}

// AppointmentResponse wraps a stored appointment plus the outcome of its
// reminder scheduling attempt.
type AppointmentResponse struct {
	Appointment domain.Appointment `json:"appointment"`
	Reminder    string             `json:"reminder"`
	ReminderAt  string             `json:"reminderAt,omitempty"`
}

// CreateAppointment handles POST /appointments.
func (h *Handlers) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title, date and time are required")
		return
	}

	appt, err := h.appts.Add(domain.Appointment{
		Title:           req.Title,
		Date:            req.Date,
		Time:            req.Time,
		ReminderMinutes: req.ReminderMinutes,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrValidation) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		failCause(c, http.StatusInternalServerError, ErrCodeInternal, "Error saving appointment.", err.Error())
		return
	}

	resp := AppointmentResponse{Appointment: appt, Reminder: ReminderNone}
	job, err := h.reminders.Schedule(appt)
	switch {
	case err == nil && job != nil:
		resp.Reminder = ReminderScheduled
		resp.ReminderAt = job.FireAt.Format("2006-01-02 15:04")
	case err == nil:
		// reminderMinutes == 0: nothing to arm
	case errors.Is(err, schedule.ErrPastTrigger):
		resp.Reminder = ReminderPastTrigger
	case errors.Is(err, schedule.ErrPermissionDenied):
		resp.Reminder = ReminderPermissionDenied
	case errors.Is(err, schedule.ErrValidation):
		// Appointment already stored; report the reminder as unusable
		// rather than failing the whole request.
		resp.Reminder = ReminderFailed
	default:
		resp.Reminder = ReminderFailed
	}

	ok(c, http.StatusCreated, resp)
}

// ListAppointments handles GET /appointments. Accepts an optional ?limit=
// query to cap the number of returned entries.
func (h *Handlers) ListAppointments(c *gin.Context) {
	appts := h.appts.List()
	if limit := utils.AtoiDefault(c.Query("limit"), 0); limit > 0 && limit < len(appts) {
		appts = appts[:limit]
	}
	ok(c, http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointment handles GET /appointments/:id.
func (h *Handlers) GetAppointment(c *gin.Context) {
	appt, found := h.appts.Get(c.Param("id"))
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "appointment not found")
		return
	}
	ok(c, http.StatusOK, appt)
}

// DeleteAppointment handles DELETE /appointments/:id. Removing an
// appointment also cancels any pending reminder for it.
func (h *Handlers) DeleteAppointment(c *gin.Context) {
	err := h.appts.Remove(c.Param("id"))
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, schedule.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "appointment not found")
	default:
		failCause(c, http.StatusInternalServerError, ErrCodeInternal, "Error deleting appointment.", err.Error())
	}
}
