package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"freighter/internal/browse"
	"freighter/internal/format"
	"freighter/internal/northwind"
)

func (m Model) handleCustomerDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	orders := m.customerOrders()

	switch msg.String() {
	case "j", "down":
		if m.customerDetail.selected < len(orders)-1 {
			m.customerDetail.selected++
		}
	case "k", "up":
		if m.customerDetail.selected > 0 {
			m.customerDetail.selected--
		}
	case "g", "home":
		m.customerDetail.selected = 0
	case "G", "end":
		if len(orders) > 0 {
			m.customerDetail.selected = len(orders) - 1
		}
	case "enter":
		if m.customerDetail.selected < len(orders) {
			return m.openOrder(orders[m.customerDetail.selected].Order)
		}
	}
	return m, nil
}

// customerOrders returns the resolved order history, empty while loading
// or after a failed fetch.
func (m Model) customerOrders() []northwind.CustomerOrder {
	if m.customerDetail.details == nil {
		return nil
	}
	return m.customerDetail.details.Orders
}

func (m Model) renderCustomerDetail() string {
	st := m.customerDetail

	title := m.theme.Title.Render("Customer " + st.customerID)

	var body string
	switch {
	case st.err != nil:
		body = m.theme.Danger.Render("Error loading customer. Please try again.")
	case st.loading:
		body = m.theme.Muted.Render("Loading customer...")
	case st.details == nil:
		body = m.theme.Muted.Render("No data.")
	default:
		body = m.customerCard() + "\n\n" + m.orderHistory()
	}

	hints := "enter order detail · j/k move · esc back · ? help"
	return m.composeView(title, body, m.theme.Muted.Render(hints))
}

func (m Model) customerCard() string {
	c := m.customerDetail.details.Customer

	lines := []string{
		m.theme.Accent.Render(c.CompanyName),
		c.ContactName + " · " + c.ContactTitle,
		c.Address,
		strings.TrimSpace(c.City + " " + c.Region + " " + c.PostalCode),
		c.Country,
		"Phone " + c.Phone,
	}
	if c.Fax != "" {
		lines = append(lines, "Fax "+c.Fax)
	}
	return m.theme.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) orderHistory() string {
	details := m.customerDetail.details

	header := []string{"Order", "Ordered", "Required", "Shipped", "Ship City", "Freight", "Total"}
	widths := []int{7, 13, 13, 13, 15, 11, 12}

	cells := make([][]string, 0, len(details.Orders))
	for _, co := range details.Orders {
		o := co.Order
		cells = append(cells, []string{
			strconv.Itoa(o.ID),
			format.Date(o.OrderDate),
			format.Date(o.RequiredDate),
			format.Date(o.ShippedDate),
			o.ShipCity,
			format.Currency(o.Freight),
			format.Currency(browse.OrderTotal(co.OrderDetails)),
		})
	}

	table := m.renderTable(header, widths, cells, m.customerDetail.selected)
	if len(cells) == 0 {
		return m.theme.Muted.Render("No orders on record.")
	}
	return m.theme.Title.Render("Order history") + "\n" + table
}
