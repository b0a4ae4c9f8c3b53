package notify

import (
	"testing"
	"time"

	"github.com/tmalley/taskdeck/internal/kv"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	return NewScheduler(kv.NewStore(t.TempDir()))
}

func TestCancelLastReminderRemovesBlob(t *testing.T) {
	store := kv.NewStore(t.TempDir())
	sched := NewScheduler(store)
	fireAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	if err := sched.Schedule("task-1", fireAt, "Task reminder", "x"); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := sched.Cancel("task-1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	data, err := store.Get(notificationsKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if data != nil {
		t.Errorf("expected blob removed once no reminders remain, got %q", data)
	}
}

func TestSchedule_And_Pending(t *testing.T) {
	sched := newTestScheduler(t)
	fireAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	if err := sched.Schedule("task-1", fireAt, "Task reminder", "Buy milk"); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	pending, err := sched.Pending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending, got %d", len(pending))
	}
	if pending[0].ID != "task-1" || pending[0].Body != "Buy milk" {
		t.Errorf("unexpected notification: %+v", pending[0])
	}
	if !pending[0].FireAt.Equal(fireAt) {
		t.Errorf("expected fire time %v, got %v", fireAt, pending[0].FireAt)
	}
}

func TestSchedule_ReplacesExisting(t *testing.T) {
	sched := newTestScheduler(t)
	first := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	if err := sched.Schedule("task-1", first, "Task reminder", "v1"); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := sched.Schedule("task-1", second, "Task reminder", "v2"); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	pending, err := sched.Pending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected replacement, got %d pending", len(pending))
	}
	if pending[0].Body != "v2" || !pending[0].FireAt.Equal(second) {
		t.Errorf("expected replaced notification, got %+v", pending[0])
	}
}

func TestCancel(t *testing.T) {
	sched := newTestScheduler(t)
	fireAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	if err := sched.Schedule("task-1", fireAt, "Task reminder", "x"); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := sched.Cancel("task-1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	pending, err := sched.Pending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending reminders, got %d", len(pending))
	}

	// Cancelling an unknown ID is a no-op.
	if err := sched.Cancel("missing"); err != nil {
		t.Errorf("cancel unknown id: %v", err)
	}
}

func TestPending_SortedByFireTime(t *testing.T) {
	sched := newTestScheduler(t)
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	sched.Schedule("late", base.Add(2*time.Hour), "Task reminder", "late")
	sched.Schedule("early", base, "Task reminder", "early")

	pending, err := sched.Pending()
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "early" {
		t.Errorf("expected fire-time order, got %+v", pending)
	}
}

func TestDue(t *testing.T) {
	sched := newTestScheduler(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sched.Schedule("past", now.Add(-time.Hour), "Task reminder", "past")
	sched.Schedule("exact", now, "Task reminder", "exact")
	sched.Schedule("future", now.Add(time.Hour), "Task reminder", "future")

	due, err := sched.Due(now)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due reminders, got %d", len(due))
	}
	for _, n := range due {
		if n.ID == "future" {
			t.Error("future reminder should not be due")
		}
	}
}

func TestBadgeCounter(t *testing.T) {
	store := kv.NewStore(t.TempDir())
	badge := NewBadgeCounter(store)

	count, err := badge.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 before any write, got %d", count)
	}

	if err := badge.SetCount(3); err != nil {
		t.Fatalf("set count: %v", err)
	}

	count, err = badge.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3, got %d", count)
	}
}
