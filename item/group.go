package item

import (
	"sort"
	"time"
)

// DateGroup is one calendar day's worth of archived items.
type DateGroup struct {
	// Day is the start of the calendar day the group covers.
	Day time.Time

	// Label is the display label for the day.
	Label string

	// Items are the archived items completed on that day.
	Items []Item
}

// ProjectGroup is one project tag's worth of archived items.
type ProjectGroup struct {
	// Label is the project tag, or NoProjectLabel for untagged items.
	Label string

	// Items are the archived items carrying the tag.
	Items []Item
}

const dateGroupLayout = "2006-01-02"

// GroupByDay buckets items by the calendar day of their completion time
// (falling back to creation time), most recent day first. Items within a
// bucket keep their input order.
func GroupByDay(items []Item) []DateGroup {
	buckets := make(map[time.Time][]Item)
	for _, it := range items {
		day := startOfDay(it.completionDay())
		buckets[day] = append(buckets[day], it)
	}

	groups := make([]DateGroup, 0, len(buckets))
	for day, grouped := range buckets {
		groups = append(groups, DateGroup{
			Day:   day,
			Label: day.Format(dateGroupLayout),
			Items: grouped,
		})
	}

	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Day.After(groups[b].Day)
	})

	return groups
}

// GroupByTag buckets items by project tag, alphabetically by label,
// with the untagged bucket always last. Items within a bucket keep their
// input order.
func GroupByTag(items []Item) []ProjectGroup {
	buckets := make(map[string][]Item)
	for _, it := range items {
		label := it.ProjectTag
		if label == "" {
			label = NoProjectLabel
		}
		buckets[label] = append(buckets[label], it)
	}

	groups := make([]ProjectGroup, 0, len(buckets))
	for label, grouped := range buckets {
		groups = append(groups, ProjectGroup{Label: label, Items: grouped})
	}

	sort.Slice(groups, func(a, b int) bool {
		if groups[a].Label == NoProjectLabel {
			return false
		}
		if groups[b].Label == NoProjectLabel {
			return true
		}
		return groups[a].Label < groups[b].Label
	})

	return groups
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
