package main

import (
	"testing"
	"time"

	"github.com/tmalley/taskdeck/item"
)

func TestStatusIcon(t *testing.T) {
	if got := statusIcon(item.Item{}); got != "[ ]" {
		t.Errorf("incomplete: got %q", got)
	}
	if got := statusIcon(item.Item{Completed: true}); got != "[x]" {
		t.Errorf("completed: got %q", got)
	}
}

func TestReminderCell(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := reminderCell(item.Item{}, now); got != "" {
		t.Errorf("no reminder: got %q", got)
	}

	future := now.Add(time.Hour)
	it := item.Item{ReminderAt: &future, HasReminder: true}
	if got := reminderCell(it, now); got == "" {
		t.Error("future reminder must render")
	}
}
