package notify

import (
	"testing"
	"time"
)

func TestLocalSink_ScheduleAndCancel(t *testing.T) {
	s := NewLocalSink()

	h, err := s.Schedule(Notification{
		Title:  "Appointment Reminder",
		Body:   "checkup",
		FireAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if s.PendingCount() != 1 {
		t.Fatalf("expected 1 pending, got %d", s.PendingCount())
	}

	if !s.Cancel(h) {
		t.Fatal("Cancel should report a stopped notification")
	}
	if s.PendingCount() != 0 {
		t.Fatalf("expected 0 pending after cancel, got %d", s.PendingCount())
	}
	if s.Cancel(h) {
		t.Fatal("second Cancel must be a no-op")
	}
}

func TestLocalSink_CancelUnknownHandle(t *testing.T) {
	s := NewLocalSink()
	if s.Cancel(Handle("nope")) {
		t.Fatal("cancelling an unknown handle must return false")
	}
}

func TestLocalSink_FiresAndPrunes(t *testing.T) {
	s := NewLocalSink()

	_, err := s.Schedule(Notification{
		Title:  "Appointment Reminder",
		Body:   "soon",
		FireAt: time.Now().Add(10 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.PendingCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("notification never fired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStaticPermission(t *testing.T) {
	if !StaticPermission(true).Granted() {
		t.Fatal("StaticPermission(true) must be granted")
	}
	if StaticPermission(false).Granted() {
		t.Fatal("StaticPermission(false) must be denied")
	}
}
