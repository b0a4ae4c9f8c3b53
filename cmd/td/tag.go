package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage project tags",
}

// tag set
var tagSetCmd = &cobra.Command{
	Use:   "set <id> <tag>",
	Short: "Assign a task to a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagSet,
}

var tagSetFollowUp bool

// tag clear
var tagClearCmd = &cobra.Command{
	Use:   "clear <id>...",
	Short: "Remove tasks from their projects",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTagClear,
}

// tag rm
var tagRmCmd = &cobra.Command{
	Use:   "rm <tag>",
	Short: "Remove a project tag from every task carrying it",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagRm,
}

// tag list
var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project tags in use",
	RunE:  runTagList,
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagSetCmd, tagClearCmd, tagRmCmd, tagListCmd)

	tagSetCmd.Flags().BoolVar(&tagSetFollowUp, "follow-up", false, "Create a follow-up task when this one is completed")
}

func runTagSet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	updated, err := store.SetProjectTag(id, args[1], tagSetFollowUp)
	if err != nil {
		return err
	}
	if updated == nil {
		return nil
	}

	fmt.Printf("Tagged %s with %s\n", shortID(store, updated.ID), updated.ProjectTag)
	return nil
}

func runTagClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := resolveID(store, arg)
		if err != nil {
			return err
		}

		updated, err := store.ClearProjectTag(id)
		if err != nil {
			return err
		}
		if updated == nil {
			continue
		}

		fmt.Printf("Cleared tag from %s: %s\n", shortID(store, updated.ID), updated.Title)
	}
	return nil
}

func runTagRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	count := store.DeleteProjectTag(args[0])
	fmt.Printf("Removed %s from %d tasks.\n", args[0], count)
	return nil
}

func runTagList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	tags := store.ProjectTags()
	if len(tags) == 0 {
		fmt.Println("No project tags in use.")
		return nil
	}

	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}
