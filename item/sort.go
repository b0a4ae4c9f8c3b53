package item

import "sort"

// SortActive returns a new slice with the active list in display order.
//
// Incomplete items always come before completed items; the split is
// stable. Within each half, the secondary order depends on the method:
// by-creation is newest-first, by-reminder puts reminder-bearing items
// first in ascending reminder order and the rest newest-first.
func SortActive(items []Item, method SortMethod) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(a, b int) bool {
		one, two := sorted[a], sorted[b]

		if one.Completed != two.Completed {
			return !one.Completed
		}

		switch method {
		case SortByReminder:
			switch {
			case one.ReminderAt == nil && two.ReminderAt == nil:
				return one.CreatedAt.After(two.CreatedAt)
			case one.ReminderAt == nil:
				return false
			case two.ReminderAt == nil:
				return true
			default:
				return one.ReminderAt.Before(*two.ReminderAt)
			}
		default:
			return one.CreatedAt.After(two.CreatedAt)
		}
	})

	return sorted
}
