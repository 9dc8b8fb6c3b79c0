// Package schedule – Scheduler
//
// This file implements the reminder scheduler. It computes the absolute
// fire time from an appointment's date, time, and lead minutes, gates
// scheduling on notification permission, drives the notification sink, and
// owns the ReminderJob lifecycle: a job exists from successful scheduling
// until it is cancelled or its fire time passes.
//
// Scheduling policy:
//   - A computed fire time at or before "now" is rejected with
//     ErrPastTrigger and creates no job.
//   - A negative reminder lead time is rejected with ErrValidation.
//   - Zero lead minutes means "no reminder" and is a no-op, not an error.
package schedule

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/healthtrack/go-health-backend/internal/domain"
	"github.com/healthtrack/go-health-backend/internal/notify"
)

// Accepted client date and time layouts. The calendar widget produces ISO
// dates; the time picker produces either 24h or 12h clock strings.
var (
	dateLayout  = "2006-01-02"
	timeLayouts = []string{"15:04", "03:04 PM", "3:04 PM"}
)

// FireTime combines an appointment's date and time strings and subtracts
// the reminder lead. The result is in the local timezone, matching what the
// user picked on the device.
func FireTime(date, timeOfDay string, reminderMinutes int) (time.Time, error) {
	d := strings.TrimSpace(date)
	tod := strings.TrimSpace(timeOfDay)
	if d == "" || tod == "" {
		return time.Time{}, fmt.Errorf("%w: date and time are required", ErrValidation)
	}
	for _, tl := range timeLayouts {
		at, err := time.ParseInLocation(dateLayout+" "+tl, d+" "+tod, time.Local)
		if err == nil {
			return at.Add(-time.Duration(reminderMinutes) * time.Minute), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q %q", ErrValidation, date, timeOfDay)
}

// pending couples a live job with the sink handle needed to cancel it and
// the bookkeeping timer that retires it once the fire time passes.
type pending struct {
	job    domain.ReminderJob
	handle notify.Handle
	expiry *time.Timer
}

// Scheduler computes and tracks reminder jobs. It is safe for concurrent
// use; jobs are process-local and single-owner, exactly like the
// appointment repository they mirror.
type Scheduler struct {
	mu   sync.Mutex
	jobs map[string]*pending

	sink  notify.Sink
	perms notify.Permission
	now   func() time.Time
}

// NewScheduler constructs a Scheduler driving the given sink, gated by the
// given permission source.
func NewScheduler(sink notify.Sink, perms notify.Permission) *Scheduler {
	return &Scheduler{
		jobs:  make(map[string]*pending),
		sink:  sink,
		perms: perms,
		now:   time.Now,
	}
}

// Schedule derives a reminder job from the appointment and hands it to the
// notification sink.
//
// Returns (nil, nil) when the appointment carries no reminder lead — a
// no-op, not an error. Otherwise it returns the created job, or:
//   - ErrValidation for a negative lead or unparseable date/time,
//   - ErrPermissionDenied when notification permission is withheld,
//   - ErrPastTrigger when the computed fire time is not in the future.
//
// None of the failures create a job or touch the sink.
func (s *Scheduler) Schedule(appt domain.Appointment) (*domain.ReminderJob, error) {
	if appt.ReminderMinutes == 0 {
		return nil, nil
	}
	if appt.ReminderMinutes < 0 {
		return nil, fmt.Errorf("%w: reminder minutes must not be negative", ErrValidation)
	}

	fireAt, err := FireTime(appt.Date, appt.Time, appt.ReminderMinutes)
	if err != nil {
		return nil, err
	}
	if !s.perms.Granted() {
		return nil, ErrPermissionDenied
	}
	if !fireAt.After(s.now()) {
		return nil, ErrPastTrigger
	}

	handle, err := s.sink.Schedule(notify.Notification{
		Title:  "Appointment Reminder",
		Body:   fmt.Sprintf("Reminder: You have an appointment %q at %s", appt.Title, appt.Time),
		FireAt: fireAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", notify.ErrScheduleFailed, err)
	}

	job := domain.ReminderJob{AppointmentID: appt.ID, FireAt: fireAt}

	s.mu.Lock()
	// A re-schedule for the same appointment replaces the old job.
	if prev, ok := s.jobs[appt.ID]; ok {
		s.retire(prev)
	}
	p := &pending{job: job, handle: handle}
	p.expiry = time.AfterFunc(fireAt.Sub(s.now()), func() { s.markDelivered(appt.ID) })
	s.jobs[appt.ID] = p
	s.mu.Unlock()

	log.Debug().
		Str("appointment_id", appt.ID).
		Time("fire_at", fireAt).
		Msg("reminder scheduled")

	return &job, nil
}

// Cancel removes any pending job for the appointment, stopping the sink
// notification before returning. It reports whether a job was cancelled;
// cancelling an appointment without a job is a no-op.
func (s *Scheduler) Cancel(appointmentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.jobs[appointmentID]
	if !ok {
		return false
	}
	delete(s.jobs, appointmentID)
	s.retire(p)
	return true
}

// Pending returns the live job for an appointment, if any. Jobs disappear
// once cancelled or fired.
func (s *Scheduler) Pending(appointmentID string) (domain.ReminderJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.jobs[appointmentID]
	if !ok {
		return domain.ReminderJob{}, false
	}
	return p.job, true
}

// PendingCount reports the number of live jobs.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Stop cancels every pending job. Called on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.jobs {
		delete(s.jobs, id)
		s.retire(p)
	}
}

// markDelivered retires a job whose fire time has passed. The sink has
// already delivered (or is delivering) the notification.
func (s *Scheduler) markDelivered(appointmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.jobs[appointmentID]
	if !ok {
		return
	}
	p.job.Delivered = true
	delete(s.jobs, appointmentID)

	log.Debug().
		Str("appointment_id", appointmentID).
		Time("fire_at", p.job.FireAt).
		Msg("reminder fired")
}

// retire stops a job's timers and its sink notification. Caller holds the
// lock.
func (s *Scheduler) retire(p *pending) {
	if p.expiry != nil {
		p.expiry.Stop()
	}
	s.sink.Cancel(p.handle)
}
