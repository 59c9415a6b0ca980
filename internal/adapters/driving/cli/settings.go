package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	sourceAgendaItems   string
	sourcePeople        string
	sourceOrganizations string
	sourceMemberships   string

	excludedStatuses []string
	orgPrefixes      []string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure source paths, status exclusions, organization
prefixes, and the synthetic data seed.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Set the source file paths",
	Long:  `Sets the paths of the four OParl JSON exports. Unset flags keep the current path.`,
	RunE:  runSettingsSources,
}

var settingsDecisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Configure the decisions category",
	RunE:  runSettingsDecisions,
}

var settingsMembersCmd = &cobra.Command{
	Use:   "members",
	Short: "Configure the members category",
	RunE:  runSettingsMembers,
}

var settingsSeedCmd = &cobra.Command{
	Use:   "seed [value]",
	Short: "Set the synthetic data seed",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSeed,
}

func init() {
	settingsSourcesCmd.Flags().StringVar(&sourceAgendaItems, "agenda-items", "", "agenda items export path")
	settingsSourcesCmd.Flags().StringVar(&sourcePeople, "people", "", "people export path")
	settingsSourcesCmd.Flags().StringVar(&sourceOrganizations, "organizations", "", "organizations export path")
	settingsSourcesCmd.Flags().StringVar(&sourceMemberships, "memberships", "", "memberships export path")

	settingsDecisionsCmd.Flags().StringSliceVar(&excludedStatuses, "exclude-status", nil,
		"statuses hidden from the actionable view")
	settingsMembersCmd.Flags().StringSliceVar(&orgPrefixes, "strip-prefix", nil,
		"prefixes stripped from organization names")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSourcesCmd)
	settingsCmd.AddCommand(settingsDecisionsCmd)
	settingsCmd.AddCommand(settingsMembersCmd)
	settingsCmd.AddCommand(settingsSeedCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	orDefault := func(path string) string {
		if path == "" {
			return "(not set)"
		}
		return path
	}

	cmd.Println(titleStyle.Render("Sources"))
	cmd.Printf("  Agenda items:  %s\n", orDefault(settings.Sources.AgendaItems))
	cmd.Printf("  People:        %s\n", orDefault(settings.Sources.People))
	cmd.Printf("  Organizations: %s\n", orDefault(settings.Sources.Organizations))
	cmd.Printf("  Memberships:   %s\n", orDefault(settings.Sources.Memberships))
	cmd.Println()

	cmd.Println(titleStyle.Render("Decisions"))
	cmd.Printf("  Excluded statuses: %s\n", strings.Join(settings.Decisions.ExcludedStatuses, ", "))
	cmd.Println()

	cmd.Println(titleStyle.Render("Members"))
	cmd.Printf("  Stripped prefixes: %s\n", strings.Join(settings.Members.OrganizationPrefixes, ", "))
	cmd.Println()

	cmd.Println(titleStyle.Render("Synthetic data"))
	cmd.Printf("  Seed: %d\n", settings.Synthetic.Seed)
	return nil
}

func runSettingsSources(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	if cmd.Flags().Changed("agenda-items") {
		settings.Sources.AgendaItems = sourceAgendaItems
	}
	if cmd.Flags().Changed("people") {
		settings.Sources.People = sourcePeople
	}
	if cmd.Flags().Changed("organizations") {
		settings.Sources.Organizations = sourceOrganizations
	}
	if cmd.Flags().Changed("memberships") {
		settings.Sources.Memberships = sourceMemberships
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	cmd.Println("Source paths saved.")
	return nil
}

func runSettingsDecisions(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if !cmd.Flags().Changed("exclude-status") {
		return errors.New("nothing to change; pass --exclude-status")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	settings.Decisions.ExcludedStatuses = excludedStatuses

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	cmd.Printf("Excluded statuses set to: %s\n", strings.Join(excludedStatuses, ", "))
	return nil
}

func runSettingsMembers(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if !cmd.Flags().Changed("strip-prefix") {
		return errors.New("nothing to change; pass --strip-prefix")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	settings.Members.OrganizationPrefixes = orgPrefixes

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	cmd.Printf("Organization prefixes set to: %s\n", strings.Join(orgPrefixes, ", "))
	return nil
}

func runSettingsSeed(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q: must be an integer", args[0])
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	settings.Synthetic.Seed = seed

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	cmd.Printf("Synthetic seed set to %d.\n", seed)
	return nil
}
