package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

var (
	projectsStatuses []string
	projectsJSON     bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Show community projects",
	Long: `Shows community projects with their status, department, progress,
and map coordinates.`,
	RunE: runProjects,
}

func init() {
	projectsCmd.Flags().StringSliceVar(&projectsStatuses, "status", nil,
		"only projects with one of these statuses (Ongoing, Completed, Planned)")
	projectsCmd.Flags().BoolVar(&projectsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, _ []string) error {
	if syntheticSvc == nil {
		return errors.New("synthetic data service not configured")
	}

	var q domain.ProjectQuery
	if cmd.Flags().Changed("status") {
		q.Statuses = projectsStatuses
	}

	projects, err := syntheticSvc.Projects(context.Background(), q)
	if err != nil {
		return fmt.Errorf("querying projects: %w", err)
	}

	if projectsJSON {
		return printJSON(cmd, projects)
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		progress := "-"
		if p.Progress != nil {
			progress = fmt.Sprintf("%d%%", *p.Progress)
		}
		rows = append(rows, []string{
			p.Name,
			p.Start.Format("2006-01-02"),
			p.Status.String(),
			p.Department,
			progress,
			fmt.Sprintf("%.4f,%.4f", p.Latitude, p.Longitude),
		})
	}
	cmd.Print(renderTable([]string{"PROJECT", "START", "STATUS", "DEPARTMENT", "PROGRESS", "LOCATION"}, rows))
	cmd.Println(renderCount(len(projects), "projects"))
	return nil
}
