package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

var (
	demographicsYearFrom int
	demographicsYearTo   int
	demographicsJSON     bool
)

var demographicsCmd = &cobra.Command{
	Use:   "demographics",
	Short: "Show population by age group",
	Long: `Shows population, migration, and net migration per age group and
year.`,
	RunE: runDemographics,
}

func init() {
	demographicsCmd.Flags().IntVar(&demographicsYearFrom, "year-from", 0, "first year to include")
	demographicsCmd.Flags().IntVar(&demographicsYearTo, "year-to", 0, "last year to include")
	demographicsCmd.Flags().BoolVar(&demographicsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(demographicsCmd)
}

func runDemographics(cmd *cobra.Command, _ []string) error {
	if syntheticSvc == nil {
		return errors.New("synthetic data service not configured")
	}

	q := domain.DemographicQuery{
		Years: domain.YearRange{From: demographicsYearFrom, To: demographicsYearTo},
	}

	records, err := syntheticSvc.Demographics(context.Background(), q)
	if err != nil {
		return fmt.Errorf("querying demographics: %w", err)
	}

	if demographicsJSON {
		return printJSON(cmd, records)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			r.AgeGroup,
			strconv.Itoa(r.Population),
			fmt.Sprintf("%+d", r.NetMigration()),
		})
	}
	cmd.Print(renderTable([]string{"YEAR", "AGE GROUP", "POPULATION", "NET MIGRATION"}, rows))
	cmd.Println(renderCount(len(records), "records"))
	return nil
}
