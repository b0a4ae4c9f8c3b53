package item

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrEmptyProjectTag is returned when setting an empty project tag.
	ErrEmptyProjectTag = errors.New("project tag cannot be empty")

	// ErrInvalidSortMethod is returned when an invalid sort method is provided.
	ErrInvalidSortMethod = errors.New("invalid sort method")

	// ErrInvalidGroupMethod is returned when an invalid group method is provided.
	ErrInvalidGroupMethod = errors.New("invalid group method")

	// ErrItemNotFound is returned when an item with the given ID doesn't exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches multiple items.
	ErrAmbiguousIDPrefix = errors.New("ambiguous item ID prefix")

	// ErrCompletedMissingCompletedAt is returned when a completed item has no timestamp.
	ErrCompletedMissingCompletedAt = errors.New("completed item must have completed_at timestamp")

	// ErrIncompleteHasCompletedAt is returned when an incomplete item has a completion timestamp.
	ErrIncompleteHasCompletedAt = errors.New("incomplete item cannot have completed_at timestamp")

	// ErrDeletedMissingDeletedAt is returned when a trashed item has no deletion timestamp.
	ErrDeletedMissingDeletedAt = errors.New("deleted item must have deleted_at timestamp")

	// ErrNotDeletedHasDeletedAt is returned when a non-trashed item has a deletion timestamp.
	ErrNotDeletedHasDeletedAt = errors.New("non-deleted item cannot have deleted_at timestamp")

	// ErrReminderFlagMismatch is returned when HasReminder disagrees with ReminderAt.
	ErrReminderFlagMismatch = errors.New("has_reminder must mirror reminder_at")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateItem checks the item's timestamp and flag invariants.
func ValidateItem(i *Item) error {
	if err := ValidateTitle(i.Title); err != nil {
		return err
	}

	if i.Completed && i.CompletedAt == nil {
		return ErrCompletedMissingCompletedAt
	}
	if !i.Completed && i.CompletedAt != nil {
		return ErrIncompleteHasCompletedAt
	}

	if i.Deleted && i.DeletedAt == nil {
		return ErrDeletedMissingDeletedAt
	}
	if !i.Deleted && i.DeletedAt != nil {
		return ErrNotDeletedHasDeletedAt
	}

	if i.HasReminder != (i.ReminderAt != nil) {
		return ErrReminderFlagMismatch
	}

	return nil
}
