package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
)

// Shared output styles.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// renderTable lays out rows under a styled header, padding each column to
// its widest cell.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	b.WriteString(headerStyle.Render(strings.TrimRight(strings.Join(cells, "  "), " ")))
	b.WriteString("\n")

	for _, row := range rows {
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// renderCount renders a one-line summary under a table.
func renderCount(n int, noun string) string {
	return mutedStyle.Render(fmt.Sprintf("%d %s", n, noun))
}

// isSourceError reports whether err is a recoverable source failure. A
// missing or malformed export empties its own category; other commands stay
// usable.
func isSourceError(err error) bool {
	return errors.Is(err, domain.ErrSourceNotFound) || errors.Is(err, domain.ErrSourceMalformed)
}

// renderSourceNotice explains why a category renders empty.
func renderSourceNotice(err error) string {
	return mutedStyle.Render(fmt.Sprintf("source unavailable: %v", err))
}
