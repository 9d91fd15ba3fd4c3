package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const pageSizeStep = 5

// truncate shortens s to limit display cells, appending an ellipsis when
// anything was cut.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, limit-1, "") + "…"
}

// pad fits s to exactly width display cells.
func pad(s string, width int) string {
	s = truncate(s, width)
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// renderTable renders a fixed-width text table with the selected row
// highlighted. selected < 0 renders without a selection.
func (m Model) renderTable(header []string, widths []int, rows [][]string, selected int) string {
	var b strings.Builder

	headCells := make([]string, len(header))
	for i, h := range header {
		headCells[i] = pad(h, widths[i])
	}
	b.WriteString(m.theme.ColumnHead.Render(strings.Join(headCells, "  ")))

	for r, row := range rows {
		b.WriteString("\n")
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		line := strings.Join(cells, "  ")
		if r == selected {
			b.WriteString(m.theme.SelRow.Render(line))
		} else {
			b.WriteString(m.theme.Row.Render(line))
		}
	}

	return b.String()
}

// renderMain dispatches to the active view's renderer.
func (m Model) renderMain() string {
	switch m.currentView {
	case ViewOrders:
		return m.renderOrders()
	case ViewCustomerDetail:
		return m.renderCustomerDetail()
	case ViewOrderDetail:
		return m.renderOrderDetail()
	default:
		return m.renderCustomers()
	}
}

// composeView stacks the shared header, a title line, the body, and the
// footer hints, then clamps to the window size.
func (m Model) composeView(title, body, footer string) string {
	var b strings.Builder

	b.WriteString(m.renderAppHeader())
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(body)

	content := b.String()
	if m.searching {
		footer = m.searchInput.View() + "  " + m.theme.Muted.Render("enter apply · esc clear")
	}

	gap := m.height - lipgloss.Height(content) - lipgloss.Height(footer) - 1
	if gap < 1 {
		gap = 1
	}
	return content + strings.Repeat("\n", gap) + footer
}

func (m Model) renderAppHeader() string {
	left := m.theme.Header.Render("FREIGHTER")
	tabs := []string{"c Customers", "o Orders"}
	for i, tab := range tabs {
		style := m.theme.Muted
		if (i == 0 && (m.currentView == ViewCustomers || m.currentView == ViewCustomerDetail)) ||
			(i == 1 && (m.currentView == ViewOrders || m.currentView == ViewOrderDetail)) {
			style = m.theme.Accent
		}
		tabs[i] = style.Render(tab)
	}
	return left + "  " + strings.Join(tabs, "  ") + "  " + m.theme.Muted.Render("theme "+m.theme.Name)
}
