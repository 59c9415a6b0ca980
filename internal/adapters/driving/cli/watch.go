package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/civica-labs/ratsdata-cli/internal/adapters/driven/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the source files and invalidate caches on change",
	Long: `Watches the configured export files and invalidates the in-process
caches whenever one of them is rewritten. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if datasetService == nil || settingsService == nil {
		return errors.New("dataset service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	watcher, err := watch.New(settings.Sources)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	cmd.Println("Watching sources. Press Ctrl+C to stop.")
	for change := range changes {
		cmd.Printf("Source changed: %s (%s), caches invalidated\n", change.Path, change.Collection)
		datasetService.Invalidate()
	}
	return nil
}
