package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"c / o", "customers / orders list"},
		{"enter", "open detail for the selected row"},
		{"esc", "back"},
		{"j k / arrows", "move selection"},
		{"g G", "first / last row"},
		{"[ ]", "previous / next page"},
		{"+ -", "grow / shrink page size"},
		{"1-6", "sort by column (again to flip direction)"},
		{"/", "filter the loaded page (substring)"},
		{"x", "clear the filter"},
		{"f", "cycle country filter (customers)"},
		{"T", "cycle theme"},
		{"?", "this help"},
		{"ctrl+c", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Freighter keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(m.theme.Accent.Render(pad(row[0], 14)))
		b.WriteString(m.theme.Row.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("any key to close"))

	panel := m.theme.Panel.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
