package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"freighter/internal/browse"
	"freighter/internal/format"
)

func (m Model) handleOrderDetailKey(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The view is read-only; only the global keys apply.
	return m, nil
}

func (m Model) renderOrderDetail() string {
	st := m.orderDetail

	if !st.has {
		title := m.theme.Title.Render("Order")
		body := m.theme.Muted.Render("No order selected. Pick one from the orders list.")
		return m.composeView(title, body, m.theme.Muted.Render("esc back · o orders"))
	}

	title := m.theme.Title.Render("Order #" + strconv.Itoa(st.order.ID))

	var linesSection string
	switch {
	case st.err != nil:
		linesSection = m.theme.Danger.Render("Error loading order. Please try again.")
	case st.loading:
		linesSection = m.theme.Muted.Render("Loading line items...")
	default:
		linesSection = m.lineItems()
	}

	body := m.orderCard() + "\n\n" + linesSection
	hints := "esc back · c customers · o orders · ? help"
	return m.composeView(title, body, m.theme.Muted.Render(hints))
}

func (m Model) orderCard() string {
	o := m.orderDetail.order

	lines := []string{
		m.theme.Accent.Render("Customer " + o.CustomerID),
		"Ordered  " + format.Date(o.OrderDate),
		"Required " + format.Date(o.RequiredDate),
		"Shipped  " + format.Date(o.ShippedDate),
		"",
		o.ShipName,
		o.ShipAddress,
		strings.TrimSpace(o.ShipCity + " " + o.ShipRegion + " " + o.ShipPostalCode),
		o.ShipCountry,
		"",
		"Freight  " + format.Currency(o.Freight),
	}
	return m.theme.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) lineItems() string {
	lines := browse.OrderLines(m.orderDetail.details, m.orderDetail.order.ID)
	if len(lines) == 0 {
		return m.theme.Muted.Render("No line items on record.")
	}

	header := []string{"Product", "Unit price", "Qty", "Discount", "Line total"}
	widths := []int{9, 12, 5, 10, 12}

	cells := make([][]string, 0, len(lines))
	for _, d := range lines {
		cells = append(cells, []string{
			strconv.Itoa(d.ProductID),
			format.Currency(d.UnitPrice),
			strconv.Itoa(d.Quantity),
			strconv.Itoa(int(d.Discount*100)) + "%",
			format.Currency(d.LineTotal()),
		})
	}

	table := m.renderTable(header, widths, cells, -1)
	total := m.theme.Title.Render("Total " + format.Currency(browse.OrderTotal(lines)))
	return m.theme.Title.Render("Line items") + "\n" + table + "\n" + total
}
