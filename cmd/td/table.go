package main

import (
	"fmt"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/tmalley/taskdeck/internal/ui"
	"github.com/tmalley/taskdeck/item"
)

const detailWidth = 80

// printItemTable prints items in an aligned table with highlighted ID
// prefixes.
func printItemTable(items []item.Item, index item.IDIndex) {
	prefixes := index.PrefixLengths()
	now := time.Now()

	builder := ui.NewTableBuilder([]string{"ID", "", "AGE", "REMIND", "PROJECT", "TITLE"}, len(items))
	for _, it := range items {
		builder.AddRow([]string{
			ui.HighlightID(it.ID, prefixes[it.ID]),
			statusIcon(it),
			ui.FormatTimeAgo(it.CreatedAt, now),
			reminderCell(it, now),
			it.ProjectTag,
			ui.TruncateTableCell(it.Title),
		})
	}

	fmt.Print(builder.String())
}

// printItemDetail prints one task in full.
func printItemDetail(it item.Item) {
	fmt.Printf("ID:        %s\n", it.ID)
	fmt.Printf("Title:     %s\n", wordwrap.String(it.Title, detailWidth))
	fmt.Printf("State:     %s\n", it.Partition())
	fmt.Printf("Created:   %s\n", ui.FormatClock(it.CreatedAt))

	if it.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", ui.FormatClock(*it.CompletedAt))
	}
	if it.DeletedAt != nil {
		fmt.Printf("Deleted:   %s\n", ui.FormatClock(*it.DeletedAt))
	}
	if it.ReminderAt != nil {
		fmt.Printf("Reminder:  %s\n", ui.FormatClock(*it.ReminderAt))
	}
	if it.ProjectTag != "" {
		followUp := ""
		if it.GeneratesFollowUp {
			followUp = " (generates follow-up)"
		}
		fmt.Printf("Project:   %s%s\n", it.ProjectTag, followUp)
	}
}

// shortID returns the item's unique ID prefix for display in messages.
func shortID(store *item.Store, id string) string {
	length := store.Index().PrefixLengths()[id]
	if length <= 0 || length > len(id) {
		return id
	}
	return id[:length]
}

func statusIcon(it item.Item) string {
	if it.Completed {
		return "[x]"
	}
	return "[ ]"
}

func reminderCell(it item.Item, now time.Time) string {
	if it.ReminderAt == nil {
		return ""
	}
	if it.ReminderAt.Before(now) {
		return ui.Dim(ui.FormatClock(*it.ReminderAt))
	}
	return ui.FormatClock(*it.ReminderAt)
}
