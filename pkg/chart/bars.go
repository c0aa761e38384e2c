// Package chart renders aggregation output: horizontal bar charts for the
// terminal and an XLSX report with native spreadsheet charts.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PapproxNP/books/pkg/summary"
)

const emptyLabel = "(none)"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C832"))
)

// BarOptions tunes Bars.
type BarOptions struct {
	Width   int  // length of the longest bar, in cells
	Percent bool // append each value's share of the total
}

// Bars writes a horizontal bar chart of points, one line per point, in
// the order given.
func Bars(w io.Writer, title string, points []summary.Point, opts BarOptions) error {
	if opts.Width <= 0 {
		opts.Width = 40
	}
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if len(points) == 0 {
		_, err := fmt.Fprintln(w, "(no data)")
		return err
	}

	maxVal, total, labelWidth := 0, 0, 0
	for _, p := range points {
		maxVal = max(maxVal, p.Value)
		total += p.Value
		labelWidth = max(labelWidth, lipgloss.Width(label(p)))
	}

	for _, p := range points {
		n := 0
		if maxVal > 0 {
			n = p.Value * opts.Width / maxVal
		}
		if n == 0 && p.Value > 0 {
			n = 1
		}
		lbl := label(p)
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(lbl))
		line := fmt.Sprintf("%s%s │%s %d", labelStyle.Render(lbl), pad, barStyle.Render(strings.Repeat("█", n)), p.Value)
		if opts.Percent && total > 0 {
			line += fmt.Sprintf(" (%.1f%%)", float64(p.Value)*100/float64(total))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func label(p summary.Point) string {
	if p.Label == "" {
		return emptyLabel
	}
	return p.Label
}
