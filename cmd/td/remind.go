package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmalley/taskdeck/internal/notify"
	"github.com/tmalley/taskdeck/internal/ui"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage task reminders",
}

// remind set
var remindSetCmd = &cobra.Command{
	Use:   "set <id> <when>",
	Short: "Set or replace a task's reminder",
	Long: `Set or replace a task's reminder.

The time accepts "2006-01-02 15:04", a bare "15:04" for today, or a
duration from now like "2h" or "45m".`,
	Args: cobra.ExactArgs(2),
	RunE: runRemindSet,
}

// remind cancel
var remindCancelCmd = &cobra.Command{
	Use:   "cancel <id>...",
	Short: "Cancel task reminders",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRemindCancel,
}

// remind list
var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending reminders",
	RunE:  runRemindList,
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.AddCommand(remindSetCmd, remindCancelCmd, remindListCmd)
}

func runRemindSet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	at, err := parseWhen(args[1])
	if err != nil {
		return err
	}

	updated, err := store.SetReminder(id, at)
	if err != nil {
		return err
	}
	if updated == nil {
		return nil
	}

	fmt.Printf("Reminder for %s at %s\n", shortID(store, updated.ID), ui.FormatClock(at))
	return nil
}

func runRemindCancel(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}

		updated, err := store.CancelReminder(id)
		if err != nil {
			return err
		}
		if updated == nil {
			continue
		}

		fmt.Printf("Canceled reminder for %s: %s\n", shortID(store, updated.ID), updated.Title)
	}
	return nil
}

func runRemindList(cmd *cobra.Command, args []string) error {
	blobs, err := openBlobs()
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}

	pending, err := notify.NewScheduler(blobs).Pending()
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		fmt.Println("No pending reminders.")
		return nil
	}

	prefixes := store.Index().PrefixLengths()
	now := time.Now()
	builder := ui.NewTableBuilder([]string{"ID", "AT", "TITLE"}, len(pending))
	for _, n := range pending {
		fireAt := ui.FormatClock(n.FireAt)
		if n.FireAt.Before(now) {
			fireAt = ui.Dim(fireAt)
		}
		builder.AddRow([]string{
			ui.HighlightID(n.ID, prefixes[n.ID]),
			fireAt,
			ui.TruncateTableCell(n.Body),
		})
	}

	fmt.Print(builder.String())
	return nil
}

// parseWhen parses a reminder time: an absolute clock time, a bare time of
// day (today), or a duration from now.
func parseWhen(value string) (time.Time, error) {
	now := time.Now()

	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", value, time.Local); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return now.Add(d), nil
	}

	return time.Time{}, fmt.Errorf("cannot parse time %q", value)
}
