package item

import "time"

// Item represents a single task.
type Item struct {
	// ID is a unique opaque identifier, immutable after creation.
	ID string `json:"id"`

	// Title is the task text.
	Title string `json:"title"`

	// Completed reports whether the task has been checked off.
	Completed bool `json:"completed"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the task was completed (nil when not completed).
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Archived reports whether the task has been moved out of the
	// working list. A trashed item keeps the flag it carried so a
	// restore can put it back where it came from.
	Archived bool `json:"archived"`

	// ReminderAt is when the external reminder fires (nil when none).
	ReminderAt *time.Time `json:"reminder_at,omitempty"`

	// HasReminder mirrors the presence of a live scheduled reminder.
	HasReminder bool `json:"has_reminder"`

	// ProjectTag is an optional project label ("" when untagged).
	ProjectTag string `json:"project_tag,omitempty"`

	// GeneratesFollowUp marks a recurring task: completing it creates a
	// successor carrying the same project tag. Only meaningful when
	// ProjectTag is set.
	GeneratesFollowUp bool `json:"generates_follow_up"`

	// Deleted reports whether the task is in the trash.
	Deleted bool `json:"deleted"`

	// DeletedAt is when the task was trashed (nil when not deleted).
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Partition identifies which collection an item belongs to. Every item is
// in exactly one partition at any time.
type Partition string

const (
	// PartitionActive holds the working list.
	PartitionActive Partition = "active"

	// PartitionArchived holds completed items moved out of the working list.
	PartitionArchived Partition = "archived"

	// PartitionTrashed holds soft-deleted items awaiting purge.
	PartitionTrashed Partition = "trashed"
)

// Partition derives the partition from the item's lifecycle flags.
func (i Item) Partition() Partition {
	switch {
	case i.Deleted:
		return PartitionTrashed
	case i.Archived:
		return PartitionArchived
	default:
		return PartitionActive
	}
}

// completionDay returns the timestamp used for date grouping: the
// completion time, falling back to the creation time.
func (i Item) completionDay() time.Time {
	if i.CompletedAt != nil {
		return *i.CompletedAt
	}
	return i.CreatedAt
}
