// Package display renders book sequences as bordered terminal tables.
package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/PapproxNP/books/pkg/common"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	noteStyle   = lipgloss.NewStyle().Faint(true)
)

// Table renders books in order under the schema headers. maxRows > 0
// truncates the output and appends a note with the number of rows left out.
func Table(books []common.Book, maxRows int) string {
	shown := books
	if maxRows > 0 && len(books) > maxRows {
		shown = books[:maxRows]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(common.Fields...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, b := range shown {
		t.Row(b.Row()...)
	}

	out := t.String()
	if hidden := len(books) - len(shown); hidden > 0 {
		out += "\n" + noteStyle.Render(fmt.Sprintf("... and %d more", hidden))
	}
	return out
}
