package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

var (
	decisionsFrom       string
	decisionsTo         string
	decisionsStatuses   []string
	decisionsActionable bool
	decisionsJSON       bool
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "List council decisions",
	Long: `Lists agenda items from the decisions export. Items without a recorded
result are shown with the status "No result".

The --actionable flag hides statuses that do not call for follow-up work
(configurable via decisions.excluded_statuses).`,
	RunE: runDecisions,
}

func init() {
	decisionsCmd.Flags().StringVar(&decisionsFrom, "from", "", "only items created on or after this date (YYYY-MM-DD)")
	decisionsCmd.Flags().StringVar(&decisionsTo, "to", "", "only items created on or before this date (YYYY-MM-DD)")
	decisionsCmd.Flags().StringSliceVar(&decisionsStatuses, "status", nil, "only items with one of these statuses")
	decisionsCmd.Flags().BoolVar(&decisionsActionable, "actionable", false, "hide excluded statuses")
	decisionsCmd.Flags().BoolVar(&decisionsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(decisionsCmd)
}

// parseDateFlag parses a YYYY-MM-DD flag value. Empty means unset.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date %q (want YYYY-MM-DD): %w", name, value, domain.ErrInvalidInput)
	}
	t = t.UTC()
	return &t, nil
}

func decisionQueryFromFlags(cmd *cobra.Command) (domain.DecisionQuery, error) {
	var q domain.DecisionQuery

	from, err := parseDateFlag("from", decisionsFrom)
	if err != nil {
		return q, err
	}
	to, err := parseDateFlag("to", decisionsTo)
	if err != nil {
		return q, err
	}

	q.From = from
	q.To = to
	q.ActionableOnly = decisionsActionable
	if cmd.Flags().Changed("status") {
		q.Statuses = decisionsStatuses
	}
	return q, nil
}

func runDecisions(cmd *cobra.Command, _ []string) error {
	if decisionService == nil {
		return errors.New("decision service not configured")
	}

	q, err := decisionQueryFromFlags(cmd)
	if err != nil {
		return err
	}

	items, err := decisionService.Query(context.Background(), q)
	if err != nil {
		if isSourceError(err) {
			cmd.Println(renderSourceNotice(err))
			cmd.Print(renderTable([]string{"DATE", "ITEM", "STATUS"}, nil))
			cmd.Println(renderCount(0, "decisions"))
			return nil
		}
		return fmt.Errorf("querying decisions: %w", err)
	}

	if decisionsJSON {
		return printJSON(cmd, items)
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Created.Format("2006-01-02"),
			item.Name,
			item.Status,
		})
	}
	cmd.Print(renderTable([]string{"DATE", "ITEM", "STATUS"}, rows))
	cmd.Println(renderCount(len(items), "decisions"))
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
