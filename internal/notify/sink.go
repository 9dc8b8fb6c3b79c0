// Package notify abstracts the local-notification service that delivers
// appointment reminders. The scheduler only depends on the Sink and
// Permission contracts; LocalSink is the in-process implementation used by
// the server build, standing in for an OS notification backend.
package notify

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Notification is a one-shot local notification to be shown at FireAt.
type Notification struct {
	Title  string
	Body   string
	FireAt time.Time
}

// Handle identifies a scheduled notification for later cancellation.
type Handle string

// ErrScheduleFailed is returned when the backing notification service
// rejects a scheduling request.
var ErrScheduleFailed = errors.New("notification scheduling failed")

// Sink is the notification-service capability: schedule a one-shot
// notification, or cancel a previously scheduled one.
//
// Cancel reports whether a pending notification was actually removed; it is
// a no-op (false) for unknown or already-fired handles.
type Sink interface {
	Schedule(n Notification) (Handle, error)
	Cancel(h Handle) bool
}

// Permission reports whether the user has granted notification permission.
// Scheduling is refused without a grant; the refusal must never block the
// data operation that triggered it.
type Permission interface {
	Granted() bool
}

// StaticPermission is a fixed permission answer, useful for the server
// build (always granted) and for tests (denied).
type StaticPermission bool

// Granted implements Permission.
func (p StaticPermission) Granted() bool { return bool(p) }

// LocalSink delivers notifications in-process with one timer per pending
// notification. Delivery is a structured log line; a real deployment would
// swap in a push or OS notification backend behind the same interface.
//
// The zero value is not usable; construct with NewLocalSink.
type LocalSink struct {
	mu      sync.Mutex
	pending map[Handle]*time.Timer
	logger  zerolog.Logger
}

// NewLocalSink constructs a LocalSink logging through the global logger.
func NewLocalSink() *LocalSink {
	return &LocalSink{
		pending: make(map[Handle]*time.Timer),
		logger:  log.With().Str("component", "notify").Logger(),
	}
}

// Schedule implements Sink. The notification fires after FireAt-now has
// elapsed; a FireAt in the past fires immediately (the scheduler rejects
// past triggers before they get here).
func (s *LocalSink) Schedule(n Notification) (Handle, error) {
	h := Handle(uuid.NewString())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[h] = time.AfterFunc(time.Until(n.FireAt), func() {
		s.mu.Lock()
		delete(s.pending, h)
		s.mu.Unlock()

		s.logger.Info().
			Str("handle", string(h)).
			Str("title", n.Title).
			Str("body", n.Body).
			Time("fire_at", n.FireAt).
			Msg("notification delivered")
	})
	return h, nil
}

// Cancel implements Sink. Stopping the timer under the lock guarantees a
// cancelled notification never fires afterwards.
func (s *LocalSink) Cancel(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pending[h]
	if !ok {
		return false
	}
	delete(s.pending, h)
	return t.Stop()
}

// PendingCount reports the number of notifications not yet fired. Used by
// tests and the health endpoint.
func (s *LocalSink) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
