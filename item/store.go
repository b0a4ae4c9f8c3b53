package item

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"
)

// Blob keys for the persisted collections and preferences.
const (
	activeKey      = "items"
	archiveKey     = "archive"
	trashKey       = "trash"
	sortMethodKey  = "sort-method"
	groupMethodKey = "archive-group-method"
)

// Blobs is the durable key-value storage the store persists into.
type Blobs interface {
	// Get reads the blob stored under key. A missing key returns (nil, nil).
	Get(key string) ([]byte, error)

	// Put writes the blob under key, replacing any previous value.
	Put(key string, data []byte) error
}

// Notifier schedules external reminders keyed by item ID. Schedule over an
// existing ID replaces the pending reminder; Cancel of an unknown ID is a
// no-op.
type Notifier interface {
	Schedule(id string, fireAt time.Time, title, body string) error
	Cancel(id string) error
}

// Badge is the external indicator showing the count of active items with a
// live reminder.
type Badge interface {
	SetCount(count int) error
}

type noopNotifier struct{}

func (noopNotifier) Schedule(string, time.Time, string, string) error { return nil }
func (noopNotifier) Cancel(string) error                              { return nil }

type noopBadge struct{}

func (noopBadge) SetCount(int) error { return nil }

// Store owns the three task collections and all mutation of them. It is
// designed for a single caller: operations run to completion and are atomic
// from the caller's point of view. Collaborator failures (persistence,
// reminder scheduling, badge) are logged, never surfaced as fatal.
type Store struct {
	blobs    Blobs
	notifier Notifier
	badge    Badge
	logf     func(format string, args ...any)
	now      func() time.Time

	active   []Item
	archived []Item
	trashed  []Item

	sortMethod  SortMethod
	groupMethod GroupMethod

	// dirty tracks blobs whose last write failed, so the next mutation
	// retries them.
	dirty map[string]bool
}

// Options configures collaborators for Open.
type Options struct {
	// Notifier receives reminder scheduling calls. Defaults to a no-op.
	Notifier Notifier

	// Badge receives reminder-count updates. Defaults to a no-op.
	Badge Badge

	// Logf logs collaborator failures. Defaults to log.Printf.
	Logf func(format string, args ...any)

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time
}

// Open loads the persisted collections and preferences from blobs,
// normalizes legacy records, expires stale reminders, and runs the
// lifecycle sweep once.
func Open(blobs Blobs, opts Options) (*Store, error) {
	if blobs == nil {
		return nil, fmt.Errorf("blob storage is required")
	}

	s := &Store{
		blobs:       blobs,
		notifier:    opts.Notifier,
		badge:       opts.Badge,
		logf:        opts.Logf,
		now:         opts.Now,
		sortMethod:  SortByCreation,
		groupMethod: GroupByDate,
		dirty:       make(map[string]bool),
	}
	if s.notifier == nil {
		s.notifier = noopNotifier{}
	}
	if s.badge == nil {
		s.badge = noopBadge{}
	}
	if s.logf == nil {
		s.logf = log.Printf
	}
	if s.now == nil {
		s.now = time.Now
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	s.refreshReminders()
	s.sweep()
	s.checkInvariants()
	s.persistDirty()
	s.updateBadge()

	return s, nil
}

// load reads the five blobs and computes each record's partition once,
// so contradictory lifecycle flags cannot survive deserialization.
func (s *Store) load() error {
	loadedAt := s.now()

	active, err := s.loadItems(activeKey)
	if err != nil {
		return err
	}
	for i := range active {
		active[i].Archived = false
		active[i].Deleted = false
		active[i].DeletedAt = nil
	}
	s.active = active

	archived, err := s.loadItems(archiveKey)
	if err != nil {
		return err
	}
	for i := range archived {
		archived[i].Archived = true
		archived[i].Deleted = false
		archived[i].DeletedAt = nil
	}
	s.archived = archived

	trashed, err := s.loadItems(trashKey)
	if err != nil {
		return err
	}
	for i := range trashed {
		trashed[i].Deleted = true
		if trashed[i].DeletedAt == nil {
			at := loadedAt
			trashed[i].DeletedAt = &at
			s.dirty[trashKey] = true
		}
	}
	s.trashed = trashed

	if method, err := s.loadPreference(sortMethodKey); err != nil {
		return err
	} else if m := SortMethod(method); m.IsValid() {
		s.sortMethod = m
	}

	if method, err := s.loadPreference(groupMethodKey); err != nil {
		return err
	} else if m := GroupMethod(method); m.IsValid() {
		s.groupMethod = m
	}

	return nil
}

func (s *Store) loadItems(key string) ([]Item, error) {
	data, err := s.blobs.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}

	// Re-establish the timestamp invariants on records written by older
	// versions: the booleans win, the timestamps follow.
	for i := range items {
		if !items[i].Completed {
			items[i].CompletedAt = nil
		}
		if items[i].Completed && items[i].CompletedAt == nil {
			at := items[i].CreatedAt
			items[i].CompletedAt = &at
		}
		if items[i].ReminderAt == nil {
			items[i].HasReminder = false
		} else {
			items[i].HasReminder = true
		}
	}

	return items, nil
}

func (s *Store) loadPreference(key string) (string, error) {
	data, err := s.blobs.Get(key)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	if len(data) == 0 {
		return "", nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return "", fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

// refreshReminders reconciles the external scheduler with the loaded
// state: reminders in the past are expired in place, reminders in the
// future are re-armed. Completing a task cancels its reminder, so a
// completed record carrying one is stale and is expired too.
func (s *Store) refreshReminders() {
	now := s.now()
	for i := range s.active {
		it := &s.active[i]
		if !it.HasReminder {
			continue
		}
		if !it.Completed && it.ReminderAt.After(now) {
			s.scheduleReminder(*it)
			continue
		}
		it.ReminderAt = nil
		it.HasReminder = false
		s.cancelReminder(it.ID)
		s.dirty[activeKey] = true
	}
}

// scheduleReminder asks the notifier to schedule a reminder for the item.
// Failure is logged; HasReminder keeps reflecting the user's intent.
func (s *Store) scheduleReminder(it Item) {
	if it.ReminderAt == nil {
		return
	}
	if err := s.notifier.Schedule(it.ID, *it.ReminderAt, "Task reminder", it.Title); err != nil {
		s.logf("schedule reminder for %s: %v", it.ID, err)
	}
}

// cancelReminder asks the notifier to drop any pending reminder for id.
func (s *Store) cancelReminder(id string) {
	if err := s.notifier.Cancel(id); err != nil {
		s.logf("cancel reminder for %s: %v", id, err)
	}
}

// finishMutation runs after every mutation entry point: it re-evaluates
// the lifecycle rules, checks the item invariants, persists the named
// partitions plus anything whose last write failed, and refreshes the
// badge.
func (s *Store) finishMutation(keys ...string) {
	s.sweep()
	s.checkInvariants()
	for _, key := range keys {
		s.dirty[key] = true
	}
	s.persistDirty()
	s.updateBadge()
}

// checkInvariants validates every item before a write. A violation is a
// bug in a mutation path, not a user error, so it is logged and the write
// proceeds with memory as the source of truth.
func (s *Store) checkInvariants() {
	for _, items := range [][]Item{s.active, s.archived, s.trashed} {
		for i := range items {
			if err := ValidateItem(&items[i]); err != nil {
				s.logf("item %s: %v", items[i].ID, err)
			}
		}
	}
}

func (s *Store) persistDirty() {
	for key := range s.dirty {
		if s.persistKey(key) {
			delete(s.dirty, key)
		}
	}
}

func (s *Store) persistKey(key string) bool {
	var value any
	switch key {
	case activeKey:
		value = emptyAsList(s.active)
	case archiveKey:
		value = emptyAsList(s.archived)
	case trashKey:
		value = emptyAsList(s.trashed)
	case sortMethodKey:
		value = string(s.sortMethod)
	case groupMethodKey:
		value = string(s.groupMethod)
	default:
		s.logf("persist unknown key %s", key)
		return true
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.logf("marshal %s: %v", key, err)
		return false
	}
	if err := s.blobs.Put(key, data); err != nil {
		s.logf("write %s: %v", key, err)
		return false
	}
	return true
}

func emptyAsList(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	return items
}

// BadgeCount returns the count of active items with a live reminder.
func (s *Store) BadgeCount() int {
	count := 0
	for _, it := range s.active {
		if it.HasReminder {
			count++
		}
	}
	return count
}

func (s *Store) updateBadge() {
	if err := s.badge.SetCount(s.BadgeCount()); err != nil {
		s.logf("set badge count: %v", err)
	}
}

// SortMethod returns the active-list sort preference.
func (s *Store) SortMethod() SortMethod {
	return s.sortMethod
}

// GroupMethod returns the archive grouping preference.
func (s *Store) GroupMethod() GroupMethod {
	return s.groupMethod
}

// Active returns the working list in display order.
func (s *Store) Active() []Item {
	return SortActive(s.active, s.sortMethod)
}

// Archived returns a copy of the archived list in storage order.
func (s *Store) Archived() []Item {
	return copyItems(s.archived)
}

// Trashed returns a copy of the trash in storage order.
func (s *Store) Trashed() []Item {
	return copyItems(s.trashed)
}

// DateGroups returns the archived items grouped by completion day.
func (s *Store) DateGroups() []DateGroup {
	return GroupByDay(s.archived)
}

// ProjectGroups returns the archived items grouped by project tag.
func (s *Store) ProjectGroups() []ProjectGroup {
	return GroupByTag(s.archived)
}

// ProjectTags returns the sorted unique project tags across the active and
// archived collections.
func (s *Store) ProjectTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, items := range [][]Item{s.active, s.archived} {
		for _, it := range items {
			if it.ProjectTag == "" || seen[it.ProjectTag] {
				continue
			}
			seen[it.ProjectTag] = true
			tags = append(tags, it.ProjectTag)
		}
	}
	sort.Strings(tags)
	return tags
}

// Get looks an item up by exact ID across all three partitions.
func (s *Store) Get(id string) (Item, bool) {
	for _, items := range [][]Item{s.active, s.archived, s.trashed} {
		for _, it := range items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Index returns an ID index over all three partitions.
func (s *Store) Index() IDIndex {
	return NewIDIndex(s.active, s.archived, s.trashed)
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
