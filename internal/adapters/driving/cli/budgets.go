package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/services"
)

var (
	budgetsYearFrom    int
	budgetsYearTo      int
	budgetsDepartments []string
	budgetsJSON        bool
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Show budget lines per department and year",
	Long: `Shows planned budget against actual expenditure per department and
year, including the efficiency ratio of each line.`,
	RunE: runBudgets,
}

func init() {
	budgetsCmd.Flags().IntVar(&budgetsYearFrom, "year-from", 0, "first year to include")
	budgetsCmd.Flags().IntVar(&budgetsYearTo, "year-to", 0, "last year to include")
	budgetsCmd.Flags().StringSliceVar(&budgetsDepartments, "department", nil, "only these departments")
	budgetsCmd.Flags().BoolVar(&budgetsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(cmd *cobra.Command, _ []string) error {
	if syntheticSvc == nil {
		return errors.New("synthetic data service not configured")
	}

	q := domain.BudgetQuery{
		Years: domain.YearRange{From: budgetsYearFrom, To: budgetsYearTo},
	}
	if cmd.Flags().Changed("department") {
		q.Departments = budgetsDepartments
	}

	lines, err := syntheticSvc.Budgets(context.Background(), q)
	if err != nil {
		return fmt.Errorf("querying budgets: %w", err)
	}

	if budgetsJSON {
		return printJSON(cmd, lines)
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			strconv.Itoa(line.Year),
			line.Department,
			services.FormatMoney(line.Planned),
			services.FormatMoney(line.Expenditure),
			line.Efficiency().StringFixed(2) + "%",
		})
	}
	cmd.Print(renderTable([]string{"YEAR", "DEPARTMENT", "PLANNED", "EXPENDITURE", "EFFICIENCY"}, rows))
	cmd.Println(renderCount(len(lines), "budget lines"))
	return nil
}
