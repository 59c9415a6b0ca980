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
	servicesYearFrom int
	servicesYearTo   int
	servicesTypes    []string
	servicesJSON     bool
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Show municipal service usage",
	Long: `Shows planned against actual usage per municipal service type and
year, including the variance of each record.`,
	RunE: runServices,
}

func init() {
	servicesCmd.Flags().IntVar(&servicesYearFrom, "year-from", 0, "first year to include")
	servicesCmd.Flags().IntVar(&servicesYearTo, "year-to", 0, "last year to include")
	servicesCmd.Flags().StringSliceVar(&servicesTypes, "type", nil, "only these service types")
	servicesCmd.Flags().BoolVar(&servicesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, _ []string) error {
	if syntheticSvc == nil {
		return errors.New("synthetic data service not configured")
	}

	q := domain.ServiceQuery{
		Years: domain.YearRange{From: servicesYearFrom, To: servicesYearTo},
	}
	if cmd.Flags().Changed("type") {
		q.Types = servicesTypes
	}

	usage, err := syntheticSvc.Services(context.Background(), q)
	if err != nil {
		return fmt.Errorf("querying services: %w", err)
	}

	if servicesJSON {
		return printJSON(cmd, usage)
	}

	rows := make([][]string, 0, len(usage))
	for _, u := range usage {
		rows = append(rows, []string{
			strconv.Itoa(u.Year),
			u.ServiceType,
			strconv.Itoa(u.Planned),
			strconv.Itoa(u.Actual),
			fmt.Sprintf("%+d", u.Variance()),
		})
	}
	cmd.Print(renderTable([]string{"YEAR", "SERVICE", "PLANNED", "ACTUAL", "VARIANCE"}, rows))
	cmd.Println(renderCount(len(usage), "service records"))
	return nil
}
