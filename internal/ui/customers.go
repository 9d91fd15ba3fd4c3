package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"freighter/internal/browse"
	"freighter/internal/northwind"
)

// customerSortFields maps the digit keys shown in the column header to the
// server-side sort field names.
var customerSortFields = map[string]string{
	"1": "id",
	"2": "companyName",
	"3": "contactName",
	"4": "city",
	"5": "country",
}

func (m Model) handleCustomersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if field, ok := customerSortFields[key]; ok {
		gen := m.customers.list.ToggleSort(field)
		m.customers.loading = true
		return m, fetchCustomersCmd(m.ctx, m.client, m.customers.list.CustomerQuery(), gen)
	}

	rows := m.visibleCustomers()

	switch key {
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.customers.list.SearchTerm())
		m.searchInput.Focus()
		return m, nil

	case "x":
		m.searchInput.SetValue("")
		m.customers.list.SetSearchTerm("")
		m.customers.selected = 0
		return m, nil

	case "f":
		m.customers.list.SetPage(0)
		gen := m.customers.list.SetCountryFilter(m.nextCountryFilter())
		m.customers.loading = true
		return m, fetchCustomersCmd(m.ctx, m.client, m.customers.list.CustomerQuery(), gen)

	case "j", "down":
		if m.customers.selected < len(rows)-1 {
			m.customers.selected++
		}
		return m, nil

	case "k", "up":
		if m.customers.selected > 0 {
			m.customers.selected--
		}
		return m, nil

	case "g", "home":
		m.customers.selected = 0
		return m, nil

	case "G", "end":
		if len(rows) > 0 {
			m.customers.selected = len(rows) - 1
		}
		return m, nil

	case "]", "right":
		if !m.hasNextCustomerPage() {
			return m, nil
		}
		gen := m.customers.list.SetPage(m.customers.list.Page() + 1)
		m.customers.loading = true
		return m, fetchCustomersCmd(m.ctx, m.client, m.customers.list.CustomerQuery(), gen)

	case "[", "left":
		if m.customers.list.Page() == 0 {
			return m, nil
		}
		gen := m.customers.list.SetPage(m.customers.list.Page() - 1)
		m.customers.loading = true
		return m, fetchCustomersCmd(m.ctx, m.client, m.customers.list.CustomerQuery(), gen)

	case "+", "=":
		return m.resizeCustomerPage(m.customers.list.PageSize() + pageSizeStep)

	case "-":
		if m.customers.list.PageSize() <= pageSizeStep {
			return m, nil
		}
		return m.resizeCustomerPage(m.customers.list.PageSize() - pageSizeStep)

	case "enter":
		if m.customers.selected >= len(rows) {
			return m, nil
		}
		customer := rows[m.customers.selected]
		m = m.pushView(ViewCustomerDetail)
		m.customerDetail = customerDetailState{customerID: customer.ID, loading: true}
		return m, fetchDetailsCmd(m.ctx, m.client, customer.ID, forCustomerView)
	}

	return m, nil
}

func (m Model) resizeCustomerPage(size int) (tea.Model, tea.Cmd) {
	m.customers.list.SetPageSize(size)
	gen := m.customers.list.SetPage(0)
	m.customers.loading = true
	m.savePrefs()
	return m, fetchCustomersCmd(m.ctx, m.client, m.customers.list.CustomerQuery(), gen)
}

// visibleCustomers applies the client-side search to the loaded page.
func (m Model) visibleCustomers() []northwind.Customer {
	if m.customers.page == nil {
		return nil
	}
	return browse.FilterCustomers(m.customers.page.Results, m.customers.list.SearchTerm())
}

// nextCountryFilter cycles all -> each country present on the loaded
// (unfiltered) page -> all.
func (m Model) nextCountryFilter() string {
	var options []string
	if m.customers.page != nil {
		options = browse.Countries(m.customers.page.Results)
	}
	if len(options) == 0 {
		return browse.FilterAll
	}
	current := m.customers.list.CountryFilter()
	if current == browse.FilterAll {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return browse.FilterAll
		}
	}
	return browse.FilterAll
}

func (m Model) hasNextCustomerPage() bool {
	if m.customers.page == nil {
		return false
	}
	next := (m.customers.list.Page() + 1) * m.customers.list.PageSize()
	return next < m.customers.page.Total
}

func (m Model) renderCustomers() string {
	st := m.customers

	header := []string{"1 ID", "2 Company", "3 Contact", "4 City", "5 Country", "Phone"}
	widths := []int{6, 28, 22, 14, 12, 16}

	var body string
	switch {
	case st.err != nil:
		body = m.theme.Danger.Render("Error loading customers. Please try again.")
	case st.loading && st.page == nil:
		body = m.theme.Muted.Render("Loading customers...")
	default:
		rows := m.visibleCustomers()
		cells := make([][]string, 0, len(rows))
		for _, c := range rows {
			cells = append(cells, []string{
				c.ID, c.CompanyName, c.ContactName, c.City, c.Country, c.Phone,
			})
		}
		body = m.renderTable(header, widths, cells, st.selected)
		if len(rows) == 0 {
			body += "\n" + m.theme.Muted.Render("No customers match.")
		}
	}

	title := m.listTitle("Customers", &st.list, m.customerPageTotal())
	footer := m.customersFooter()
	return m.composeView(title, body, footer)
}

func (m Model) customerPageTotal() int {
	if m.customers.page == nil {
		return 0
	}
	return m.customers.page.Total
}

func (m Model) customersFooter() string {
	filter := m.customers.list.CountryFilter()
	if filter == browse.FilterAll {
		filter = "all countries"
	}
	hints := "enter detail · / search · f " + filter + " · 1-5 sort · [ ] page · +/- size · o orders · ? help"
	if m.customers.loading && m.customers.page != nil {
		hints = "refreshing... · " + hints
	}
	return m.theme.Muted.Render(hints)
}

// listTitle renders "Customers · page 1/10 · 91 total" with sort state.
func (m Model) listTitle(name string, list *browse.ListState, total int) string {
	title := m.theme.Title.Render(name)

	pages := 1
	if total > 0 && list.PageSize() > 0 {
		pages = (total + list.PageSize() - 1) / list.PageSize()
	}
	info := fmt.Sprintf(" page %d/%d", list.Page()+1, pages)
	if total > 0 {
		info += " · " + strconv.Itoa(total) + " total"
	}
	if list.SortField() != "" {
		dir := "asc"
		if list.SortDesc() {
			dir = "desc"
		}
		info += " · sort " + list.SortField() + " " + dir
	}
	if term := list.SearchTerm(); term != "" {
		info += " · /" + term
	}
	return title + m.theme.Muted.Render(info)
}
