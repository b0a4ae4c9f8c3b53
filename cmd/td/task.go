package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tmalley/taskdeck/item"
)

// add
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to the working list",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addRemind   string
	addProject  string
	addFollowUp bool
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the working list",
	RunE:  runList,
}

var listJSON bool

// done
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Toggle completion of one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id> <title>",
	Short: "Change a task's title",
	Args:  cobra.ExactArgs(2),
	RunE:  runEdit,
}

// move
var moveCmd = &cobra.Command{
	Use:   "move <id> <position>",
	Short: "Move a task to a position in the working list",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

// rm
var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Move one or more tasks to the trash",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(addCmd, listCmd, doneCmd, editCmd, moveCmd, rmCmd, showCmd)

	addCmd.Flags().StringVarP(&addRemind, "remind", "r", "", "Reminder time (2006-01-02 15:04, 15:04, or a duration like 2h)")
	addCmd.Flags().StringVarP(&addProject, "project", "p", "", "Project tag")
	addCmd.Flags().BoolVar(&addFollowUp, "follow-up", false, "Create a follow-up task when this one is completed")

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	opts := item.AddOptions{
		ProjectTag:        addProject,
		GeneratesFollowUp: addFollowUp,
	}
	if addRemind != "" {
		at, err := parseWhen(addRemind)
		if err != nil {
			return err
		}
		opts.ReminderAt = &at
	}

	added, err := store.Add(args[0], opts)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s: %s\n", shortID(store, added.ID), added.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	items := store.Active()

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("No tasks. Add one with: td add <title>")
		return nil
	}

	printItemTable(items, store.Index())
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}

		result, err := store.Toggle(id)
		if err != nil {
			return err
		}
		if result == nil {
			continue
		}

		if result.Item.Completed {
			fmt.Printf("Completed %s: %s\n", shortID(store, result.Item.ID), result.Item.Title)
		} else {
			fmt.Printf("Reopened %s: %s\n", shortID(store, result.Item.ID), result.Item.Title)
		}
		if result.FollowUp != nil {
			fmt.Printf("Added follow-up %s: %s\n", shortID(store, result.FollowUp.ID), result.FollowUp.Title)
		}
	}
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	updated, err := store.UpdateTitle(id, args[1])
	if err != nil {
		return err
	}
	if updated == nil {
		return nil
	}

	fmt.Printf("Updated %s: %s\n", shortID(store, updated.ID), updated.Title)
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	position, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("position must be a number: %s", args[1])
	}

	moved, err := store.Reorder(id, position)
	if err != nil {
		return err
	}
	if moved == nil {
		return nil
	}

	fmt.Printf("Moved %s: %s\n", shortID(store, moved.ID), moved.Title)
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}

		target, ok := store.Get(id)
		if !ok {
			continue
		}

		var trashed *item.Item
		if target.Partition() == item.PartitionArchived {
			trashed, err = store.DeleteArchived(id)
		} else {
			trashed, err = store.Delete(id)
		}
		if err != nil {
			return err
		}
		if trashed == nil {
			continue
		}

		fmt.Printf("Trashed %s: %s\n", shortID(store, trashed.ID), trashed.Title)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	var items []item.Item
	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}
		it, ok := store.Get(id)
		if !ok {
			continue
		}
		items = append(items, it)
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for i, it := range items {
		if i > 0 {
			fmt.Println("---")
		}
		printItemDetail(it)
	}
	return nil
}
