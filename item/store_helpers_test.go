package item

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// memBlobs is an in-memory Blobs implementation. Individual keys can be
// made to fail writes to exercise the best-effort persistence path.
type memBlobs struct {
	data     map[string][]byte
	failPuts map[string]bool
	puts     []string
}

func newMemBlobs() *memBlobs {
	return &memBlobs{
		data:     make(map[string][]byte),
		failPuts: make(map[string]bool),
	}
}

func (m *memBlobs) Get(key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memBlobs) Put(key string, data []byte) error {
	if m.failPuts[key] {
		return errors.New("disk full")
	}
	m.data[key] = append([]byte(nil), data...)
	m.puts = append(m.puts, key)
	return nil
}

// fakeNotifier records schedule and cancel calls.
type fakeNotifier struct {
	scheduled map[string]time.Time
	canceled  []string
	err       error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{scheduled: make(map[string]time.Time)}
}

func (n *fakeNotifier) Schedule(id string, fireAt time.Time, title, body string) error {
	if n.err != nil {
		return n.err
	}
	n.scheduled[id] = fireAt
	return nil
}

func (n *fakeNotifier) Cancel(id string) error {
	if n.err != nil {
		return n.err
	}
	delete(n.scheduled, id)
	n.canceled = append(n.canceled, id)
	return nil
}

// fakeBadge records every count it is set to.
type fakeBadge struct {
	counts []int
}

func (b *fakeBadge) SetCount(count int) error {
	b.counts = append(b.counts, count)
	return nil
}

func (b *fakeBadge) last() int {
	if len(b.counts) == 0 {
		return -1
	}
	return b.counts[len(b.counts)-1]
}

// testClock is a controllable time source.
type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) now() time.Time {
	return c.current
}

func (c *testClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

type fixture struct {
	blobs    *memBlobs
	notifier *fakeNotifier
	badge    *fakeBadge
	clock    *testClock
	logs     []string
}

func newTestStore(t *testing.T) (*Store, *fixture) {
	t.Helper()

	f := &fixture{
		blobs:    newMemBlobs(),
		notifier: newFakeNotifier(),
		badge:    &fakeBadge{},
		clock:    newTestClock(),
	}
	store, err := Open(f.blobs, Options{
		Notifier: f.notifier,
		Badge:    f.badge,
		Now:      f.clock.now,
		Logf: func(format string, args ...any) {
			f.logs = append(f.logs, fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, f
}

// reopen opens a fresh store over the fixture's persisted blobs.
func (f *fixture) reopen(t *testing.T) *Store {
	t.Helper()

	store, err := Open(f.blobs, Options{
		Notifier: f.notifier,
		Badge:    f.badge,
		Now:      f.clock.now,
		Logf: func(format string, args ...any) {
			f.logs = append(f.logs, fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	return store
}

// checkPartitionsDisjoint asserts every item is in exactly one partition.
func checkPartitionsDisjoint(t *testing.T, s *Store) {
	t.Helper()

	seen := make(map[string]Partition)
	record := func(items []Item, p Partition) {
		for _, it := range items {
			if prev, ok := seen[it.ID]; ok {
				t.Errorf("item %s in both %s and %s", it.ID, prev, p)
			}
			seen[it.ID] = p
			if got := it.Partition(); got != p {
				t.Errorf("item %s in %s collection reports partition %s", it.ID, p, got)
			}
		}
	}
	record(s.active, PartitionActive)
	record(s.archived, PartitionArchived)
	record(s.trashed, PartitionTrashed)
}

func mustAdd(t *testing.T, s *Store, title string, opts AddOptions) Item {
	t.Helper()

	it, err := s.Add(title, opts)
	if err != nil {
		t.Fatalf("add %q: %v", title, err)
	}
	if it == nil {
		t.Fatalf("add %q returned no item", title)
	}
	return *it
}

func timePtr(t time.Time) *time.Time {
	return &t
}
