package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmalley/taskdeck/internal/ui"
	"github.com/tmalley/taskdeck/item"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage archived tasks",
}

// archive list
var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived tasks, grouped by the configured method",
	RunE:  runArchiveList,
}

var archiveListJSON bool

// archive put
var archivePutCmd = &cobra.Command{
	Use:   "put <id>...",
	Short: "Archive completed tasks without waiting for the daily sweep",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArchivePut,
}

// archive restore
var archiveRestoreCmd = &cobra.Command{
	Use:   "restore <id>...",
	Short: "Move archived tasks back to the working list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArchiveRestore,
}

// archive clear
var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every archived task",
	RunE:  runArchiveClear,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveListCmd, archivePutCmd, archiveRestoreCmd, archiveClearCmd)

	archiveListCmd.Flags().BoolVar(&archiveListJSON, "json", false, "Output as JSON")
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if archiveListJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(store.Archived())
	}

	if len(store.Archived()) == 0 {
		fmt.Println("Archive is empty.")
		return nil
	}

	index := store.Index()
	switch store.GroupMethod() {
	case item.GroupByProject:
		for _, group := range store.ProjectGroups() {
			fmt.Println(ui.Header(group.Label))
			printItemTable(group.Items, index)
			fmt.Println()
		}
	default:
		for _, group := range store.DateGroups() {
			fmt.Println(ui.Header(group.Label))
			printItemTable(group.Items, index)
			fmt.Println()
		}
	}
	return nil
}

func runArchivePut(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}

		archived, err := store.Archive(id)
		if err != nil {
			return err
		}
		if archived == nil {
			continue
		}

		fmt.Printf("Archived %s: %s\n", shortID(store, archived.ID), archived.Title)
	}
	return nil
}

func runArchiveRestore(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}

		restored, err := store.RestoreFromArchive(id)
		if err != nil {
			return err
		}
		if restored == nil {
			continue
		}

		fmt.Printf("Restored %s: %s\n", shortID(store, restored.ID), restored.Title)
	}
	return nil
}

func runArchiveClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	count := len(store.Archived())
	if count == 0 {
		fmt.Println("Archive is empty.")
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Delete all %d archived tasks?", count))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	cleared := store.ClearArchive()
	fmt.Printf("Cleared %d archived tasks.\n", cleared)
	return nil
}
