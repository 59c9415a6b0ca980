package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/services"
)

var (
	statsActionable bool
	statsYearFrom   int
	statsYearTo     int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated dashboard figures",
	Long: `Shows the aggregated dashboard view of a data category: counts and
monthly series for decisions, distinct members per fraction, grouped sums
for budgets, and totals for the remaining categories.`,
}

var statsDecisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Decision counts by status and month",
	RunE:  runStatsDecisions,
}

var statsMembersCmd = &cobra.Command{
	Use:   "members",
	Short: "Distinct members per organization",
	RunE:  runStatsMembers,
}

var statsBudgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Budget totals and efficiency",
	RunE:  runStatsBudgets,
}

var statsProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Project counts by status",
	RunE:  runStatsProjects,
}

var statsServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Service usage totals and variance",
	RunE:  runStatsServices,
}

var statsDemographicsCmd = &cobra.Command{
	Use:   "demographics",
	Short: "Population growth and migration",
	RunE:  runStatsDemographics,
}

func init() {
	statsDecisionsCmd.Flags().BoolVar(&statsActionable, "actionable", false, "hide excluded statuses")
	for _, cmd := range []*cobra.Command{statsBudgetsCmd, statsServicesCmd, statsDemographicsCmd} {
		cmd.Flags().IntVar(&statsYearFrom, "year-from", 0, "first year to include")
		cmd.Flags().IntVar(&statsYearTo, "year-to", 0, "last year to include")
	}

	statsCmd.AddCommand(statsDecisionsCmd)
	statsCmd.AddCommand(statsMembersCmd)
	statsCmd.AddCommand(statsBudgetsCmd)
	statsCmd.AddCommand(statsProjectsCmd)
	statsCmd.AddCommand(statsServicesCmd)
	statsCmd.AddCommand(statsDemographicsCmd)
	rootCmd.AddCommand(statsCmd)
}

// printCountMap prints a count map in deterministic key order.
func printCountMap(cmd *cobra.Command, counts map[string]int) {
	for _, key := range domain.SortedKeys(counts) {
		cmd.Printf("  %-28s %d\n", key, counts[key])
	}
}

func runStatsDecisions(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.Decisions(context.Background(), domain.DecisionQuery{
		ActionableOnly: statsActionable,
	})
	if err != nil {
		if isSourceError(err) {
			cmd.Println(renderSourceNotice(err))
			return nil
		}
		return fmt.Errorf("aggregating decisions: %w", err)
	}

	cmd.Println(titleStyle.Render("Decisions"))
	cmd.Printf("  Total: %d  Shown: %d\n", stats.TotalItems, stats.Filtered)
	if stats.TopStatus != "" {
		cmd.Printf("  Most common status: %s\n", stats.TopStatus)
	}
	cmd.Println()
	cmd.Println(titleStyle.Render("By status"))
	printCountMap(cmd, stats.ByStatus)
	cmd.Println()
	cmd.Println(titleStyle.Render("By month"))
	printCountMap(cmd, stats.ByMonth)
	return nil
}

func runStatsMembers(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.Members(context.Background(), domain.MemberQuery{})
	if err != nil {
		if isSourceError(err) {
			cmd.Println(renderSourceNotice(err))
			return nil
		}
		return fmt.Errorf("aggregating members: %w", err)
	}

	cmd.Println(titleStyle.Render("Members"))
	cmd.Printf("  Distinct members: %d\n", stats.TotalMembers)
	cmd.Println()
	cmd.Println(titleStyle.Render("By organization"))
	printCountMap(cmd, stats.ByOrganization)
	return nil
}

func runStatsBudgets(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.Budgets(context.Background(), domain.BudgetQuery{
		Years: domain.YearRange{From: statsYearFrom, To: statsYearTo},
	})
	if err != nil {
		return fmt.Errorf("aggregating budgets: %w", err)
	}

	cmd.Println(titleStyle.Render("Budgets"))
	cmd.Printf("  Planned:     %s\n", services.FormatMoney(stats.TotalPlanned))
	cmd.Printf("  Expenditure: %s\n", services.FormatMoney(stats.TotalExpenditure))
	cmd.Printf("  Efficiency:  %s%%\n", stats.Efficiency.StringFixed(2))
	cmd.Println()
	cmd.Println(titleStyle.Render("Planned by department"))
	departments := make([]string, 0, len(stats.ByDepartment))
	for dept := range stats.ByDepartment {
		departments = append(departments, dept)
	}
	sort.Strings(departments)
	for _, dept := range departments {
		cmd.Printf("  %-24s %s\n", dept, services.FormatMoney(stats.ByDepartment[dept]["planned"]))
	}
	return nil
}

func runStatsProjects(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.Projects(context.Background(), domain.ProjectQuery{})
	if err != nil {
		return fmt.Errorf("aggregating projects: %w", err)
	}

	cmd.Println(titleStyle.Render("Projects"))
	cmd.Printf("  Total: %d\n", stats.Total)
	cmd.Println()
	cmd.Println(titleStyle.Render("By status"))
	printCountMap(cmd, stats.ByStatus)
	return nil
}

func runStatsServices(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.Services(context.Background(), domain.ServiceQuery{
		Years: domain.YearRange{From: statsYearFrom, To: statsYearTo},
	})
	if err != nil {
		return fmt.Errorf("aggregating services: %w", err)
	}

	cmd.Println(titleStyle.Render("Services"))
	cmd.Printf("  Planned: %d  Actual: %d\n", stats.TotalPlanned, stats.TotalActual)
	cmd.Println()
	cmd.Println(titleStyle.Render("Variance by type"))
	types := make([]string, 0, len(stats.VarianceByType))
	for svc := range stats.VarianceByType {
		types = append(types, svc)
	}
	sort.Strings(types)
	for _, svc := range types {
		cmd.Printf("  %-24s %+d\n", svc, stats.VarianceByType[svc])
	}
	return nil
}

func runStatsDemographics(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.Demographics(context.Background(), domain.DemographicQuery{
		Years: domain.YearRange{From: statsYearFrom, To: statsYearTo},
	})
	if err != nil {
		return fmt.Errorf("aggregating demographics: %w", err)
	}

	cmd.Println(titleStyle.Render("Demographics"))
	cmd.Printf("  Population growth: %.2f%%\n", stats.GrowthPercent)
	cmd.Printf("  Net migration:     %+d\n", stats.NetMigration)
	cmd.Println()
	cmd.Println(titleStyle.Render("Population by age group"))
	printCountMap(cmd, stats.ByAgeGroup)
	return nil
}
