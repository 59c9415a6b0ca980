// Package cli provides the cobra command tree for the ratsdata CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/civica-labs/ratsdata-cli/internal/adapters/driven/config/file"
	"github.com/civica-labs/ratsdata-cli/internal/adapters/driven/oparl"
	"github.com/civica-labs/ratsdata-cli/internal/adapters/driven/storage/sqlite"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driven"
	"github.com/civica-labs/ratsdata-cli/internal/core/ports/driving"
	"github.com/civica-labs/ratsdata-cli/internal/core/services"
	"github.com/civica-labs/ratsdata-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired for the command handlers. Tests swap these directly.
var (
	settingsService driving.SettingsService
	datasetService  driving.DatasetService
	decisionService driving.DecisionService
	memberService   driving.MemberService
	statsService    driving.StatsService
	syntheticSvc    driving.SyntheticService

	// snapshotStore is kept for closing on exit; nil when unavailable.
	snapshotStore *sqlite.Store

	servicesReady bool
)

var (
	configPath  string
	verboseMode bool
)

var rootCmd = &cobra.Command{
	Use:   "ratsdata",
	Short: "Query a council's open-data exports from the command line",
	Long: `ratsdata loads a municipal council's OParl JSON exports (decisions,
people, organizations, memberships), joins them into readable views, and
answers filtered queries and aggregations over them.

Sources are parsed once and cached; reruns against unchanged exports are
served from the snapshot cache.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseMode)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.ratsdata/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false,
		"enable verbose logging to stderr")
}

// initServices wires the adapters into the core services. Subsequent calls
// are no-ops, so tests can install their own fixtures beforehand.
func initServices() error {
	if servicesReady {
		return nil
	}

	configStore, err := configfile.NewConfigStore(configPath)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.Cache.DataDir)
	if err != nil {
		// The CLI still works without the persistent cache; sources are
		// simply re-parsed each run.
		logger.Warn("Snapshot cache unavailable: %v", err)
	} else {
		snapshotStore = store
	}

	dataset := services.NewDatasetService(oparl.NewReader(), snapshotStoreOrNil(), settings)
	datasetService = dataset
	decisionService = services.NewDecisionService(dataset, settings)
	memberService = services.NewMemberService(dataset)
	syntheticSvc = services.NewSyntheticService(settings)
	statsService = services.NewStatsService(decisionService, memberService, syntheticSvc)

	servicesReady = true
	return nil
}

// snapshotStoreOrNil avoids handing a typed-nil interface to the dataset
// service when the SQLite cache failed to open.
func snapshotStoreOrNil() driven.SnapshotStore {
	if snapshotStore == nil {
		return nil
	}
	return snapshotStore
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if snapshotStore != nil {
			snapshotStore.Close() //nolint:errcheck
		}
	}()
	return rootCmd.Execute()
}
