// Package notify implements the reminder scheduler and badge collaborators
// for a single-machine CLI. Pending reminders and the badge count are kept
// in the same blob store as the task collections, so `td status` can
// surface due reminders without a daemon.
package notify

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const (
	notificationsKey = "notifications"
	badgeKey         = "badge"
)

// Blobs is the storage the scheduler records pending reminders in.
type Blobs interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Delete(key string) error
}

// Notification is one pending reminder.
type Notification struct {
	// ID keys the notification; one pending reminder per task ID.
	ID string `json:"id"`

	// FireAt is when the reminder should be delivered.
	FireAt time.Time `json:"fire_at"`

	// Title is the notification headline.
	Title string `json:"title"`

	// Body is the notification text, usually the task title.
	Body string `json:"body"`
}

// Scheduler stores pending reminders keyed by task ID. Schedule over an
// existing ID replaces it; Cancel of an unknown ID is a no-op.
type Scheduler struct {
	blobs Blobs
}

// NewScheduler returns a scheduler backed by blobs.
func NewScheduler(blobs Blobs) *Scheduler {
	return &Scheduler{blobs: blobs}
}

// Schedule records a reminder for id, replacing any pending one.
func (s *Scheduler) Schedule(id string, fireAt time.Time, title, body string) error {
	pending, err := s.Pending()
	if err != nil {
		return err
	}

	kept := pending[:0]
	for _, n := range pending {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	kept = append(kept, Notification{ID: id, FireAt: fireAt, Title: title, Body: body})

	return s.write(kept)
}

// Cancel drops any pending reminder for id.
func (s *Scheduler) Cancel(id string) error {
	pending, err := s.Pending()
	if err != nil {
		return err
	}

	kept := pending[:0]
	for _, n := range pending {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(pending) {
		return nil
	}

	return s.write(kept)
}

// Pending returns all pending reminders sorted by fire time.
func (s *Scheduler) Pending() ([]Notification, error) {
	data, err := s.blobs.Get(notificationsKey)
	if err != nil {
		return nil, fmt.Errorf("read notifications: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var pending []Notification
	if err := json.Unmarshal(data, &pending); err != nil {
		return nil, fmt.Errorf("parse notifications: %w", err)
	}

	sort.Slice(pending, func(a, b int) bool {
		return pending[a].FireAt.Before(pending[b].FireAt)
	})
	return pending, nil
}

// Due returns pending reminders whose fire time is at or before now.
func (s *Scheduler) Due(now time.Time) ([]Notification, error) {
	pending, err := s.Pending()
	if err != nil {
		return nil, err
	}

	var due []Notification
	for _, n := range pending {
		if !n.FireAt.After(now) {
			due = append(due, n)
		}
	}
	return due, nil
}

func (s *Scheduler) write(pending []Notification) error {
	if len(pending) == 0 {
		if err := s.blobs.Delete(notificationsKey); err != nil {
			return fmt.Errorf("remove notifications: %w", err)
		}
		return nil
	}
	data, err := json.MarshalIndent(pending, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal notifications: %w", err)
	}
	if err := s.blobs.Put(notificationsKey, data); err != nil {
		return fmt.Errorf("write notifications: %w", err)
	}
	return nil
}

// BadgeCounter persists the reminder badge count. Status-bar integrations
// read the stored value.
type BadgeCounter struct {
	blobs Blobs
}

// NewBadgeCounter returns a badge counter backed by blobs.
func NewBadgeCounter(blobs Blobs) *BadgeCounter {
	return &BadgeCounter{blobs: blobs}
}

// SetCount stores the badge count.
func (b *BadgeCounter) SetCount(count int) error {
	data, err := json.Marshal(count)
	if err != nil {
		return fmt.Errorf("marshal badge count: %w", err)
	}
	if err := b.blobs.Put(badgeKey, data); err != nil {
		return fmt.Errorf("write badge count: %w", err)
	}
	return nil
}

// Count reads the stored badge count. A missing blob reads as zero.
func (b *BadgeCounter) Count() (int, error) {
	data, err := b.blobs.Get(badgeKey)
	if err != nil {
		return 0, fmt.Errorf("read badge count: %w", err)
	}
	if len(data) == 0 {
		return 0, nil
	}

	var count int
	if err := json.Unmarshal(data, &count); err != nil {
		return 0, fmt.Errorf("parse badge count: %w", err)
	}
	return count, nil
}
