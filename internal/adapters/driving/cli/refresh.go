package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-parse all sources and rebuild the snapshot cache",
	Long: `Drops the snapshot cache and re-parses every configured export. Use
this after replacing the export files in place, or when the cache is
suspected stale.`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	if err := datasetService.Refresh(context.Background()); err != nil {
		return fmt.Errorf("refreshing sources: %w", err)
	}

	cmd.Println("Sources re-parsed and snapshot cache rebuilt.")
	return nil
}
