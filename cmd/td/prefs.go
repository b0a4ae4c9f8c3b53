package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmalley/taskdeck/item"
)

// sort
var sortCmd = &cobra.Command{
	Use:   "sort [method]",
	Short: "Show or set the working list sort method",
	Long:  "Show or set the working list sort method (by-creation, by-reminder).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSort,
}

// group
var groupCmd = &cobra.Command{
	Use:   "group [method]",
	Short: "Show or set the archive grouping method",
	Long:  "Show or set the archive grouping method (by-date, by-project).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGroup,
}

func init() {
	rootCmd.AddCommand(sortCmd, groupCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(store.SortMethod())
		return nil
	}

	if err := store.SetSortMethod(item.SortMethod(args[0])); err != nil {
		return fmt.Errorf("%w (valid: %v)", err, item.ValidSortMethods())
	}

	fmt.Printf("Sorting by %s\n", store.SortMethod())
	return nil
}

func runGroup(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(store.GroupMethod())
		return nil
	}

	if err := store.SetGroupMethod(item.GroupMethod(args[0])); err != nil {
		return fmt.Errorf("%w (valid: %v)", err, item.ValidGroupMethods())
	}

	fmt.Printf("Grouping archive by %s\n", store.GroupMethod())
	return nil
}
