// Package main implements the td CLI tool.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tmalley/taskdeck/internal/config"
	"github.com/tmalley/taskdeck/internal/kv"
	"github.com/tmalley/taskdeck/internal/notify"
	"github.com/tmalley/taskdeck/internal/ui"
	"github.com/tmalley/taskdeck/item"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "Taskdeck - a personal task tracker",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.NoColor || rootNoColor {
			ui.DisableColor()
		}
		return nil
	},
}

var rootNoColor bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable ANSI styling")
}

// openStore wires the file-backed blob store, the notification scheduler,
// and the badge counter into an item store.
func openStore() (*item.Store, error) {
	blobs, err := openBlobs()
	if err != nil {
		return nil, err
	}

	return item.Open(blobs, item.Options{
		Notifier: notify.NewScheduler(blobs),
		Badge:    notify.NewBadgeCounter(blobs),
	})
}

// openBlobs opens the blob store under the configured data directory,
// creating the directory if needed.
func openBlobs() (*kv.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return kv.NewStore(cfg.DataDir), nil
}

// resolveID expands an ID prefix to a full item ID.
func resolveID(store *item.Store, prefix string) (string, error) {
	return store.Index().Resolve(prefix)
}

// confirm asks the user a yes/no question on the terminal. Non-interactive
// runs (scripts, pipes) proceed without asking.
func confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true, nil
	}

	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read answer: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
