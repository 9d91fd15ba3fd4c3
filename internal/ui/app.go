package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"freighter/internal/browse"
	"freighter/internal/northwind"
	"freighter/internal/prefs"
	"freighter/internal/selection"
)

// View represents the current active view.
type View int

const (
	ViewCustomers View = iota
	ViewOrders
	ViewCustomerDetail
	ViewOrderDetail
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    northwind.Querier
	Relay     *selection.Relay
	Logger    *zap.Logger
	PageSize  int
	ThemeName string
	PrefsPath string
}

// customersState holds everything the customers list view needs.
type customersState struct {
	list     browse.ListState
	page     *northwind.Page[northwind.Customer]
	loading  bool
	err      error
	selected int
}

// ordersState holds everything the orders list view needs.
type ordersState struct {
	list     browse.ListState
	page     *northwind.Page[northwind.Order]
	loading  bool
	err      error
	selected int
}

// customerDetailState holds the customer drill-down state.
type customerDetailState struct {
	customerID string
	details    *northwind.CustomerDetails
	loading    bool
	err        error
	selected   int
}

// orderDetailState holds the order drill-down state. The order itself
// arrives through the selection relay, not the fetch.
type orderDetailState struct {
	order   northwind.Order
	has     bool
	details *northwind.CustomerDetails
	loading bool
	err     error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    northwind.Querier
	relay     *selection.Relay
	logger    *zap.Logger
	prefsPath string

	theme       Theme
	currentView View
	back        []View
	width       int
	height      int
	ready       bool

	searching   bool
	searchInput textinput.Model

	customers      customersState
	orders         ordersState
	customerDetail customerDetailState
	orderDetail    orderDetailState

	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	relay := opts.Relay
	if relay == nil {
		relay = &selection.Relay{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dark"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "/"
	input.CharLimit = 64

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		relay:     relay,
		logger:    logger,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),

		currentView: ViewCustomers,
		searchInput: input,

		customers: customersState{list: browse.NewListState(opts.PageSize), loading: true},
		orders:    ordersState{list: browse.NewOrderListState(opts.PageSize), loading: true},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		fetchCustomersCmd(m.ctx, m.client, m.customers.list.CustomerQuery(), m.customers.list.Generation()),
		fetchOrdersCmd(m.ctx, m.client, m.orders.list.OrderQuery(), m.orders.list.Generation()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case customersMsg:
		if !m.customers.list.Current(msg.gen) {
			// A newer request superseded this fetch.
			return m, nil
		}
		m.customers.loading = false
		m.customers.err = msg.err
		if msg.err != nil {
			m.customers.page = nil
			m.logger.Warn("customer query failed", zap.Error(msg.err))
		} else {
			m.customers.page = msg.page
		}
		m.customers.selected = 0
		return m, nil

	case ordersMsg:
		if !m.orders.list.Current(msg.gen) {
			return m, nil
		}
		m.orders.loading = false
		m.orders.err = msg.err
		if msg.err != nil {
			m.orders.page = nil
			m.logger.Warn("order query failed", zap.Error(msg.err))
		} else {
			m.orders.page = msg.page
		}
		m.orders.selected = 0
		return m, nil

	case detailsMsg:
		return m.handleDetails(msg), nil
	}

	return m, nil
}

func (m Model) handleDetails(msg detailsMsg) Model {
	switch msg.target {
	case forCustomerView:
		if msg.customerID != m.customerDetail.customerID {
			// The user already navigated to a different customer.
			return m
		}
		m.customerDetail.loading = false
		m.customerDetail.err = msg.err
		if msg.err != nil {
			m.customerDetail.details = nil
			m.logger.Warn("customer details fetch failed",
				zap.String("customer", msg.customerID), zap.Error(msg.err))
		} else {
			m.customerDetail.details = msg.details
		}
		m.customerDetail.selected = 0

	case forOrderView:
		if !m.orderDetail.has || msg.customerID != m.orderDetail.order.CustomerID {
			return m
		}
		m.orderDetail.loading = false
		m.orderDetail.err = msg.err
		if msg.err != nil {
			m.orderDetail.details = nil
			m.logger.Warn("order details fetch failed",
				zap.String("customer", msg.customerID), zap.Error(msg.err))
		} else {
			m.orderDetail.details = msg.details
		}
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "c":
		return m.switchTo(ViewCustomers), nil

	case "o":
		return m.switchTo(ViewOrders), nil

	case "esc":
		return m.goBack(), nil
	}

	switch m.currentView {
	case ViewCustomers:
		return m.handleCustomersKey(msg)
	case ViewOrders:
		return m.handleOrdersKey(msg)
	case ViewCustomerDetail:
		return m.handleCustomerDetailKey(msg)
	case ViewOrderDetail:
		return m.handleOrderDetailKey(msg)
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applySearchTerm("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applySearchTerm(m.searchInput.Value())
	return m, cmd
}

// applySearchTerm routes the live search term to whichever list view is
// active. The term filters the loaded page only; no refetch happens.
func (m *Model) applySearchTerm(term string) {
	switch m.currentView {
	case ViewCustomers:
		m.customers.list.SetSearchTerm(term)
		m.customers.selected = 0
	case ViewOrders:
		m.orders.list.SetSearchTerm(term)
		m.orders.selected = 0
	}
}

func (m Model) switchTo(view View) Model {
	if m.currentView == view {
		return m
	}
	m.currentView = view
	m.back = nil
	m.searching = false
	return m
}

// pushView navigates into a drill-down view, remembering where to return.
func (m Model) pushView(view View) Model {
	m.back = append(m.back, m.currentView)
	m.currentView = view
	m.searching = false
	return m
}

func (m Model) goBack() Model {
	if len(m.back) == 0 {
		return m
	}
	m.currentView = m.back[len(m.back)-1]
	m.back = m.back[:len(m.back)-1]
	return m
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		PageSize: m.customers.list.PageSize(),
	})
}
