package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

var (
	membersOrgs []string
	membersJSON bool
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List council members",
	Long: `Lists council members joined from the memberships, people, and
organizations exports. Memberships whose person or organization cannot be
resolved are kept and shown as "Unknown".`,
	RunE: runMembers,
}

func init() {
	membersCmd.Flags().StringSliceVar(&membersOrgs, "org", nil, "only members of these organizations")
	membersCmd.Flags().BoolVar(&membersJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(membersCmd)
}

func runMembers(cmd *cobra.Command, _ []string) error {
	if memberService == nil {
		return errors.New("member service not configured")
	}

	var q domain.MemberQuery
	if cmd.Flags().Changed("org") {
		q.Organizations = membersOrgs
	}

	rows, err := memberService.Query(context.Background(), q)
	if err != nil {
		if isSourceError(err) {
			cmd.Println(renderSourceNotice(err))
			cmd.Print(renderTable([]string{"NAME", "ORGANIZATION", "ROLE", "SINCE"}, nil))
			cmd.Println(renderCount(0, "memberships"))
			return nil
		}
		return fmt.Errorf("querying members: %w", err)
	}

	if membersJSON {
		return printJSON(cmd, rows)
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{row.Name, row.Organization, row.Role, row.StartDate})
	}
	cmd.Print(renderTable([]string{"NAME", "ORGANIZATION", "ROLE", "SINCE"}, table))
	cmd.Println(renderCount(len(rows), "memberships"))
	return nil
}
