package item

import (
	"time"
)

// AddOptions configures a new task.
type AddOptions struct {
	// ReminderAt schedules an external reminder for the new task.
	ReminderAt *time.Time

	// ProjectTag labels the task with a project.
	ProjectTag string

	// GeneratesFollowUp marks the task as recurring. Only meaningful
	// with a project tag.
	GeneratesFollowUp bool
}

// Add inserts a new task at the front of the working list.
func (s *Store) Add(title string, opts AddOptions) (*Item, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	now := s.now()
	it := Item{
		ID:                NewID(),
		Title:             title,
		CreatedAt:         now,
		ProjectTag:        opts.ProjectTag,
		GeneratesFollowUp: opts.GeneratesFollowUp,
	}
	if opts.ReminderAt != nil {
		at := *opts.ReminderAt
		it.ReminderAt = &at
		it.HasReminder = true
	}

	s.active = append([]Item{it}, s.active...)
	if it.HasReminder {
		s.scheduleReminder(it)
	}

	s.finishMutation(activeKey)
	return s.getActive(it.ID), nil
}

// ToggleResult reports the outcome of a completion toggle.
type ToggleResult struct {
	// Item is the toggled task.
	Item Item

	// FollowUp is the auto-generated successor task, set only when
	// completing a recurring tagged task. The caller is expected to
	// prompt the user for a reminder time for it.
	FollowUp *Item
}

// Toggle flips a task's completion state. Completing cancels any live
// reminder and, for recurring tagged tasks, synthesizes a follow-up task
// at the front of the working list. Unknown or non-active IDs are a no-op
// and return (nil, nil).
func (s *Store) Toggle(id string) (*ToggleResult, error) {
	index := s.findActive(id)
	if index < 0 {
		return nil, nil
	}

	now := s.now()
	it := &s.active[index]
	it.Completed = !it.Completed

	var followUp *Item
	if it.Completed {
		at := now
		it.CompletedAt = &at

		if it.HasReminder {
			s.cancelReminder(it.ID)
			it.ReminderAt = nil
			it.HasReminder = false
		}

		if it.GeneratesFollowUp && it.ProjectTag != "" {
			successor := Item{
				ID:                NewID(),
				Title:             FollowUpPrefix + it.Title,
				CreatedAt:         now,
				ProjectTag:        it.ProjectTag,
				GeneratesFollowUp: true,
			}
			s.active = append([]Item{successor}, s.active...)
			followUp = &successor
		}
	} else {
		it.CompletedAt = nil
	}

	toggled, _ := s.Get(id)
	s.finishMutation(activeKey)
	return &ToggleResult{Item: toggled, FollowUp: followUp}, nil
}

// Delete moves an active task to the trash.
func (s *Store) Delete(id string) (*Item, error) {
	index := s.findActive(id)
	if index < 0 {
		return nil, nil
	}

	it := s.active[index]
	s.active = append(s.active[:index], s.active[index+1:]...)
	moved := s.moveToTrash(it)

	s.finishMutation(activeKey, trashKey)
	return &moved, nil
}

// DeleteArchived moves an archived task to the trash.
func (s *Store) DeleteArchived(id string) (*Item, error) {
	index := s.findArchived(id)
	if index < 0 {
		return nil, nil
	}

	it := s.archived[index]
	s.archived = append(s.archived[:index], s.archived[index+1:]...)
	moved := s.moveToTrash(it)

	s.finishMutation(archiveKey, trashKey)
	return &moved, nil
}

// moveToTrash stamps the item deleted and appends it to the trash,
// cancelling any live reminder first.
func (s *Store) moveToTrash(it Item) Item {
	if it.HasReminder {
		s.cancelReminder(it.ID)
		it.ReminderAt = nil
		it.HasReminder = false
	}

	at := s.now()
	it.Deleted = true
	it.DeletedAt = &at
	s.trashed = append(s.trashed, it)
	return it
}

// Archive moves a completed active task to the archive immediately.
// Incomplete or unknown tasks are a no-op.
func (s *Store) Archive(id string) (*Item, error) {
	index := s.findActive(id)
	if index < 0 || !s.active[index].Completed {
		return nil, nil
	}

	it := s.active[index]
	it.Archived = true
	s.active = append(s.active[:index], s.active[index+1:]...)
	s.archived = append(s.archived, it)

	s.finishMutation(activeKey, archiveKey)
	return &it, nil
}

// RestoreFromArchive moves an archived task back to the working list.
func (s *Store) RestoreFromArchive(id string) (*Item, error) {
	index := s.findArchived(id)
	if index < 0 {
		return nil, nil
	}

	it := s.archived[index]
	it.Archived = false
	s.archived = append(s.archived[:index], s.archived[index+1:]...)
	s.active = append(s.active, it)

	s.finishMutation(activeKey, archiveKey)
	return &it, nil
}

// RestoreFromTrash moves a trashed task back to the partition it came
// from, derived from the archived flag it carried.
func (s *Store) RestoreFromTrash(id string) (*Item, error) {
	index := s.findTrashed(id)
	if index < 0 {
		return nil, nil
	}

	it := s.trashed[index]
	it.Deleted = false
	it.DeletedAt = nil
	s.trashed = append(s.trashed[:index], s.trashed[index+1:]...)

	if it.Archived {
		s.archived = append(s.archived, it)
		s.finishMutation(trashKey, archiveKey)
	} else {
		s.active = append(s.active, it)
		s.finishMutation(trashKey, activeKey)
	}
	return &it, nil
}

// PermanentlyDelete removes a trashed task for good.
func (s *Store) PermanentlyDelete(id string) (*Item, error) {
	index := s.findTrashed(id)
	if index < 0 {
		return nil, nil
	}

	it := s.trashed[index]
	s.trashed = append(s.trashed[:index], s.trashed[index+1:]...)

	s.finishMutation(trashKey)
	return &it, nil
}

// EmptyTrash removes every trashed task for good. Returns the number of
// tasks removed.
func (s *Store) EmptyTrash() int {
	removed := len(s.trashed)
	s.trashed = nil

	s.finishMutation(trashKey)
	return removed
}

// ClearArchive removes every archived task. Returns the number of tasks
// removed.
func (s *Store) ClearArchive() int {
	removed := len(s.archived)
	s.archived = nil

	s.finishMutation(archiveKey)
	return removed
}

// SetReminder schedules (or reschedules) a reminder for an active task.
func (s *Store) SetReminder(id string, at time.Time) (*Item, error) {
	index := s.findActive(id)
	if index < 0 {
		return nil, nil
	}

	it := &s.active[index]
	if it.HasReminder {
		s.cancelReminder(it.ID)
	}
	fireAt := at
	it.ReminderAt = &fireAt
	it.HasReminder = true
	s.scheduleReminder(*it)

	updated := *it
	s.finishMutation(activeKey)
	return &updated, nil
}

// CancelReminder drops an active task's reminder.
func (s *Store) CancelReminder(id string) (*Item, error) {
	index := s.findActive(id)
	if index < 0 {
		return nil, nil
	}

	it := &s.active[index]
	s.cancelReminder(it.ID)
	it.ReminderAt = nil
	it.HasReminder = false

	updated := *it
	s.finishMutation(activeKey)
	return &updated, nil
}

// SetProjectTag labels an active task with a project and sets whether
// completing it generates a follow-up.
func (s *Store) SetProjectTag(id, tag string, generatesFollowUp bool) (*Item, error) {
	if tag == "" {
		return nil, ErrEmptyProjectTag
	}

	index := s.findActive(id)
	if index < 0 {
		return nil, nil
	}

	it := &s.active[index]
	it.ProjectTag = tag
	it.GeneratesFollowUp = generatesFollowUp

	updated := *it
	s.finishMutation(activeKey)
	return &updated, nil
}

// ClearProjectTag removes an active task's project label and follow-up flag.
func (s *Store) ClearProjectTag(id string) (*Item, error) {
	index := s.findActive(id)
	if index < 0 {
		return nil, nil
	}

	it := &s.active[index]
	it.ProjectTag = ""
	it.GeneratesFollowUp = false

	updated := *it
	s.finishMutation(activeKey)
	return &updated, nil
}

// DeleteProjectTag clears the tag and follow-up flag on every active and
// archived task carrying it. The tasks themselves are untouched. Returns
// the number of tasks updated.
func (s *Store) DeleteProjectTag(tag string) int {
	if tag == "" {
		return 0
	}

	updated := 0
	for i := range s.active {
		if s.active[i].ProjectTag == tag {
			s.active[i].ProjectTag = ""
			s.active[i].GeneratesFollowUp = false
			updated++
		}
	}
	for i := range s.archived {
		if s.archived[i].ProjectTag == tag {
			s.archived[i].ProjectTag = ""
			s.archived[i].GeneratesFollowUp = false
			updated++
		}
	}

	if updated > 0 {
		s.finishMutation(activeKey, archiveKey)
	}
	return updated
}

// UpdateTitle renames an active task. Empty titles are rejected before
// any mutation.
func (s *Store) UpdateTitle(id, newTitle string) (*Item, error) {
	if err := ValidateTitle(newTitle); err != nil {
		return nil, err
	}

	index := s.findActive(id)
	if index < 0 {
		return nil, nil
	}

	s.active[index].Title = newTitle

	updated := s.active[index]
	s.finishMutation(activeKey)
	return &updated, nil
}

// Reorder moves an active task to a new position in the stored order.
// The index is clamped to the list bounds.
func (s *Store) Reorder(id string, toIndex int) (*Item, error) {
	index := s.findActive(id)
	if index < 0 {
		return nil, nil
	}

	it := s.active[index]
	s.active = append(s.active[:index], s.active[index+1:]...)
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(s.active) {
		toIndex = len(s.active)
	}
	s.active = append(s.active[:toIndex], append([]Item{it}, s.active[toIndex:]...)...)

	s.finishMutation(activeKey)
	return &it, nil
}

// SetSortMethod changes and persists the active-list sort preference.
func (s *Store) SetSortMethod(method SortMethod) error {
	if !method.IsValid() {
		return ErrInvalidSortMethod
	}

	s.sortMethod = method
	s.finishMutation(sortMethodKey)
	return nil
}

// SetGroupMethod changes and persists the archive grouping preference.
func (s *Store) SetGroupMethod(method GroupMethod) error {
	if !method.IsValid() {
		return ErrInvalidGroupMethod
	}

	s.groupMethod = method
	s.finishMutation(groupMethodKey)
	return nil
}

func (s *Store) findActive(id string) int {
	return findByID(s.active, id)
}

func (s *Store) findArchived(id string) int {
	return findByID(s.archived, id)
}

func (s *Store) findTrashed(id string) int {
	return findByID(s.trashed, id)
}

func findByID(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) getActive(id string) *Item {
	index := s.findActive(id)
	if index < 0 {
		return nil
	}
	it := s.active[index]
	return &it
}
