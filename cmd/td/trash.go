package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "Manage trashed tasks",
}

// trash list
var trashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trashed tasks",
	RunE:  runTrashList,
}

var trashListJSON bool

// trash restore
var trashRestoreCmd = &cobra.Command{
	Use:   "restore <id>...",
	Short: "Restore trashed tasks to where they came from",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrashRestore,
}

// trash rm
var trashRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Permanently delete trashed tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrashRm,
}

// trash empty
var trashEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Permanently delete every trashed task",
	RunE:  runTrashEmpty,
}

func init() {
	rootCmd.AddCommand(trashCmd)
	trashCmd.AddCommand(trashListCmd, trashRestoreCmd, trashRmCmd, trashEmptyCmd)

	trashListCmd.Flags().BoolVar(&trashListJSON, "json", false, "Output as JSON")
}

func runTrashList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	items := store.Trashed()

	if trashListJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("Trash is empty.")
		return nil
	}

	printItemTable(items, store.Index())
	return nil
}

func runTrashRestore(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}

		restored, err := store.RestoreFromTrash(id)
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

func runTrashRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}

		deleted, err := store.PermanentlyDelete(id)
		if err != nil {
			return err
		}
		if deleted == nil {
			continue
		}

		fmt.Printf("Deleted %s: %s\n", shortID(store, deleted.ID), deleted.Title)
	}
	return nil
}

func runTrashEmpty(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	count := len(store.Trashed())
	if count == 0 {
		fmt.Println("Trash is empty.")
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Permanently delete all %d trashed tasks?", count))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	emptied := store.EmptyTrash()
	fmt.Printf("Emptied the trash (%d tasks).\n", emptied)
	return nil
}
