package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmalley/taskdeck/internal/notify"
	"github.com/tmalley/taskdeck/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show collection counts and due reminders",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	blobs, err := openBlobs()
	if err != nil {
		return err
	}

	// Read due reminders before the store reconciles them away.
	due, err := notify.NewScheduler(blobs).Due(time.Now())
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	open := 0
	done := 0
	for _, it := range store.Active() {
		if it.Completed {
			done++
		} else {
			open++
		}
	}

	// Opening the store refreshed the persisted badge count.
	badge, err := notify.NewBadgeCounter(blobs).Count()
	if err != nil {
		return err
	}

	fmt.Println(ui.Header("Tasks"))
	fmt.Printf("  open %d, done %d, archived %d, trashed %d\n",
		open, done, len(store.Archived()), len(store.Trashed()))
	fmt.Printf("  reminders pending: %d\n", badge)

	if len(due) > 0 {
		fmt.Println()
		fmt.Println(ui.Header("Due now"))
		for _, n := range due {
			fmt.Printf("  %s  %s\n", ui.FormatClock(n.FireAt), n.Body)
		}
	}

	return nil
}
