package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"freighter/internal/northwind"
)

// customersMsg carries a completed customer page fetch. Gen identifies the
// list state generation the fetch was started for; stale generations are
// dropped in Update.
type customersMsg struct {
	gen  uint64
	page *northwind.Page[northwind.Customer]
	err  error
}

// ordersMsg carries a completed order page fetch.
type ordersMsg struct {
	gen  uint64
	page *northwind.Page[northwind.Order]
	err  error
}

// detailTarget says which view a customer aggregate fetch belongs to.
type detailTarget int

const (
	forCustomerView detailTarget = iota
	forOrderView
)

// detailsMsg carries a completed customer aggregate fetch.
type detailsMsg struct {
	target     detailTarget
	customerID string
	details    *northwind.CustomerDetails
	err        error
}

func fetchCustomersCmd(ctx context.Context, q northwind.Querier, query northwind.CustomerQuery, gen uint64) tea.Cmd {
	return func() tea.Msg {
		page, err := q.QueryCustomers(ctx, query)
		return customersMsg{gen: gen, page: page, err: err}
	}
}

func fetchOrdersCmd(ctx context.Context, q northwind.Querier, query northwind.OrderQuery, gen uint64) tea.Cmd {
	return func() tea.Msg {
		page, err := q.QueryOrders(ctx, query)
		return ordersMsg{gen: gen, page: page, err: err}
	}
}

func fetchDetailsCmd(ctx context.Context, q northwind.Querier, customerID string, target detailTarget) tea.Cmd {
	return func() tea.Msg {
		details, err := q.GetCustomerDetails(ctx, customerID)
		return detailsMsg{target: target, customerID: customerID, details: details, err: err}
	}
}
