package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#BD93F9")).
				Background(lipgloss.Color("#44475A"))

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6272A4"))

	tableSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#44475A"))

	tableTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B")).
			MarginBottom(1)
)

// TableConfig describes a table for RenderTable. TotalRow is printed below a
// separator when ShowTotal is set.
type TableConfig struct {
	Headers   []string
	Rows      [][]string
	Title     string
	ShowTotal bool
	TotalRow  []string
}

// RenderTable renders config as aligned text columns
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}
	withTotal := config.ShowTotal && len(config.TotalRow) > 0

	widths := make([]int, len(config.Headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	measure(config.Headers)
	for _, row := range config.Rows {
		measure(row)
	}
	if withTotal {
		measure(config.TotalRow)
	}

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}

	var out strings.Builder
	if config.Title != "" {
		out.WriteString(applyStyle(tableTitleStyle, config.Title))
		out.WriteString("\n")
	}
	out.WriteString(renderRow(config.Headers, widths, tableHeaderStyle))
	out.WriteString("\n")
	out.WriteString(renderRow(separator, widths, tableSeparatorStyle))
	out.WriteString("\n")
	for _, row := range config.Rows {
		out.WriteString(renderRow(row, widths, sourceStyle))
		out.WriteString("\n")
	}
	if withTotal {
		out.WriteString(renderRow(separator, widths, tableSeparatorStyle))
		out.WriteString("\n")
		out.WriteString(renderRow(config.TotalRow, widths, successStyle))
		out.WriteString("\n")
	}
	return out.String()
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	var row strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		row.WriteString(applyStyle(style, fmt.Sprintf("%-*s", widths[i], cell)))
		if i < len(cells)-1 && i < len(widths)-1 {
			row.WriteString(applyStyle(tableBorderStyle, " | "))
		}
	}
	return row.String()
}
