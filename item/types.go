// Package item implements the task lifecycle core: ordered collections of
// tasks partitioned by lifecycle state (active, archived, trashed), the
// time-driven rules that move tasks between them, derived sort and group
// views, and reminder bookkeeping against an external notification
// scheduler.
//
// The public API mirrors the CLI commands:
//   - Add, Toggle, UpdateTitle, Reorder for the working list
//   - Archive, RestoreFromArchive, ClearArchive for the archive
//   - Delete, DeleteArchived, RestoreFromTrash, PermanentlyDelete,
//     EmptyTrash for the trash
//   - SetReminder, CancelReminder for reminders
//   - SetProjectTag, ClearProjectTag, DeleteProjectTag for project tags
package item

import "time"

// SortMethod selects the secondary ordering of the active list.
type SortMethod string

const (
	// SortByCreation orders by creation time, newest first.
	SortByCreation SortMethod = "by-creation"

	// SortByReminder orders reminder-bearing items by reminder time
	// ascending, with reminderless items after them.
	SortByReminder SortMethod = "by-reminder"
)

// ValidSortMethods returns all valid sort method values.
func ValidSortMethods() []SortMethod {
	return []SortMethod{SortByCreation, SortByReminder}
}

// IsValid returns true if the sort method is a known valid value.
func (m SortMethod) IsValid() bool {
	for _, valid := range ValidSortMethods() {
		if m == valid {
			return true
		}
	}
	return false
}

// GroupMethod selects how archived items are grouped.
type GroupMethod string

const (
	// GroupByDate buckets archived items by the calendar day they were
	// completed (falling back to creation day).
	GroupByDate GroupMethod = "by-date"

	// GroupByProject buckets archived items by project tag.
	GroupByProject GroupMethod = "by-project"
)

// ValidGroupMethods returns all valid group method values.
func ValidGroupMethods() []GroupMethod {
	return []GroupMethod{GroupByDate, GroupByProject}
}

// IsValid returns true if the group method is a known valid value.
func (m GroupMethod) IsValid() bool {
	for _, valid := range ValidGroupMethods() {
		if m == valid {
			return true
		}
	}
	return false
}

// ArchiveDwell is how long a completed item stays in the working list
// before it is archived automatically.
const ArchiveDwell = 24 * time.Hour

// TrashRetention is how long a trashed item is kept before it is purged.
const TrashRetention = 30 * 24 * time.Hour

// FollowUpPrefix prefixes the title of an auto-generated follow-up task.
const FollowUpPrefix = "续: "

// NoProjectLabel is the archive bucket for items with no project tag.
const NoProjectLabel = "未分类"

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
