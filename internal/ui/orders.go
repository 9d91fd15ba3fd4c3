package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"freighter/internal/browse"
	"freighter/internal/format"
	"freighter/internal/northwind"
)

var orderSortFields = map[string]string{
	"1": "id",
	"2": "customerId",
	"3": "orderDate",
	"4": "shippedDate",
	"5": "shipCountry",
	"6": "freight",
}

func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if field, ok := orderSortFields[key]; ok {
		gen := m.orders.list.ToggleSort(field)
		m.orders.loading = true
		return m, fetchOrdersCmd(m.ctx, m.client, m.orders.list.OrderQuery(), gen)
	}

	rows := m.visibleOrders()

	switch key {
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.orders.list.SearchTerm())
		m.searchInput.Focus()
		return m, nil

	case "x":
		m.searchInput.SetValue("")
		m.orders.list.SetSearchTerm("")
		m.orders.selected = 0
		return m, nil

	case "j", "down":
		if m.orders.selected < len(rows)-1 {
			m.orders.selected++
		}
		return m, nil

	case "k", "up":
		if m.orders.selected > 0 {
			m.orders.selected--
		}
		return m, nil

	case "g", "home":
		m.orders.selected = 0
		return m, nil

	case "G", "end":
		if len(rows) > 0 {
			m.orders.selected = len(rows) - 1
		}
		return m, nil

	case "]", "right":
		if !m.hasNextOrderPage() {
			return m, nil
		}
		gen := m.orders.list.SetPage(m.orders.list.Page() + 1)
		m.orders.loading = true
		return m, fetchOrdersCmd(m.ctx, m.client, m.orders.list.OrderQuery(), gen)

	case "[", "left":
		if m.orders.list.Page() == 0 {
			return m, nil
		}
		gen := m.orders.list.SetPage(m.orders.list.Page() - 1)
		m.orders.loading = true
		return m, fetchOrdersCmd(m.ctx, m.client, m.orders.list.OrderQuery(), gen)

	case "+", "=":
		return m.resizeOrderPage(m.orders.list.PageSize() + pageSizeStep)

	case "-":
		if m.orders.list.PageSize() <= pageSizeStep {
			return m, nil
		}
		return m.resizeOrderPage(m.orders.list.PageSize() - pageSizeStep)

	case "enter":
		if m.orders.selected >= len(rows) {
			return m, nil
		}
		return m.openOrder(rows[m.orders.selected])
	}

	return m, nil
}

// openOrder relays the picked order across the navigation boundary and
// enters the order detail view, which consumes the relay slot.
func (m Model) openOrder(order northwind.Order) (tea.Model, tea.Cmd) {
	m.relay.Set(order)
	m = m.pushView(ViewOrderDetail)

	taken, ok := m.relay.Take()
	m.orderDetail = orderDetailState{order: taken, has: ok}
	if !ok || taken.CustomerID == "" {
		// Nothing selected: render the placeholder, skip the fetch.
		return m, nil
	}
	m.orderDetail.loading = true
	return m, fetchDetailsCmd(m.ctx, m.client, taken.CustomerID, forOrderView)
}

func (m Model) resizeOrderPage(size int) (tea.Model, tea.Cmd) {
	m.orders.list.SetPageSize(size)
	gen := m.orders.list.SetPage(0)
	m.orders.loading = true
	return m, fetchOrdersCmd(m.ctx, m.client, m.orders.list.OrderQuery(), gen)
}

func (m Model) visibleOrders() []northwind.Order {
	if m.orders.page == nil {
		return nil
	}
	return browse.FilterOrders(m.orders.page.Results, m.orders.list.SearchTerm())
}

func (m Model) hasNextOrderPage() bool {
	if m.orders.page == nil {
		return false
	}
	next := (m.orders.list.Page() + 1) * m.orders.list.PageSize()
	return next < m.orders.page.Total
}

func (m Model) renderOrders() string {
	st := m.orders

	header := []string{"1 ID", "2 Customer", "3 Ordered", "4 Shipped", "Ship City", "5 Country", "6 Freight"}
	widths := []int{7, 10, 13, 13, 15, 12, 11}

	var body string
	switch {
	case st.err != nil:
		body = m.theme.Danger.Render("Error loading orders. Please try again.")
	case st.loading && st.page == nil:
		body = m.theme.Muted.Render("Loading orders...")
	default:
		rows := m.visibleOrders()
		cells := make([][]string, 0, len(rows))
		for _, o := range rows {
			cells = append(cells, []string{
				strconv.Itoa(o.ID),
				o.CustomerID,
				format.Date(o.OrderDate),
				format.Date(o.ShippedDate),
				o.ShipCity,
				o.ShipCountry,
				format.Currency(o.Freight),
			})
		}
		body = m.renderTable(header, widths, cells, st.selected)
		if len(rows) == 0 {
			body += "\n" + m.theme.Muted.Render("No orders match.")
		}
	}

	title := m.listTitle("Orders", &st.list, m.orderPageTotal())
	hints := "enter detail · / search · 1-6 sort · [ ] page · +/- size · c customers · ? help"
	if st.loading && st.page != nil {
		hints = "refreshing... · " + hints
	}
	return m.composeView(title, body, m.theme.Muted.Render(hints))
}

func (m Model) orderPageTotal() int {
	if m.orders.page == nil {
		return 0
	}
	return m.orders.page.Total
}
