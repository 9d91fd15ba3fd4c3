package northwind

// Customer is a customer record as returned by the query API. Records are
// read-only from this client's perspective.
type Customer struct {
	ID           string `json:"id"`
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Fax          string `json:"fax"`
}

// Order is a single order. Date fields are opaque wire strings; the API
// encodes them as wrapped timestamps of the form /Date(<millis>)/. Use
// format.Date to render them.
type Order struct {
	ID             int     `json:"id"`
	CustomerID     string  `json:"customerId"`
	EmployeeID     int     `json:"employeeId"`
	OrderDate      string  `json:"orderDate"`
	RequiredDate   string  `json:"requiredDate"`
	ShippedDate    string  `json:"shippedDate"`
	ShipVia        int     `json:"shipVia"`
	Freight        float64 `json:"freight"`
	ShipName       string  `json:"shipName"`
	ShipAddress    string  `json:"shipAddress"`
	ShipCity       string  `json:"shipCity"`
	ShipRegion     string  `json:"shipRegion"`
	ShipPostalCode string  `json:"shipPostalCode"`
	ShipCountry    string  `json:"shipCountry"`
}

// OrderDetail is a single line item, keyed by (OrderID, ProductID).
type OrderDetail struct {
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Discount  float64 `json:"discount"`
}

// LineTotal returns the extended price for the line after discount.
func (d OrderDetail) LineTotal() float64 {
	return d.UnitPrice * float64(d.Quantity) * (1 - d.Discount)
}

// CustomerOrder pairs an order with its line items inside a customer
// aggregate.
type CustomerOrder struct {
	Order        Order         `json:"order"`
	OrderDetails []OrderDetail `json:"orderDetails"`
}

// CustomerDetails is the aggregate returned by GET /customers/{id}: the
// customer plus every order and its line items, assembled server-side.
type CustomerDetails struct {
	Customer Customer        `json:"customer"`
	Orders   []CustomerOrder `json:"orders"`
}

// Page is a window into a larger collection. Total is the full server-side
// count; Results holds at most the requested page size.
type Page[T any] struct {
	Offset  int               `json:"offset"`
	Total   int               `json:"total"`
	Results []T               `json:"results"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// QueryParams are the common list-query parameters. Zero fields are omitted
// from the request body; at most one of OrderBy/OrderByDesc may be set.
type QueryParams struct {
	Skip        int    `json:"skip,omitempty"`
	Take        int    `json:"take,omitempty"`
	OrderBy     string `json:"orderBy,omitempty"`
	OrderByDesc string `json:"orderByDesc,omitempty"`
	Include     string `json:"include,omitempty"`
	Fields      string `json:"fields,omitempty"`
}

// CustomerQuery configures POST /query/customers.
type CustomerQuery struct {
	QueryParams
	IDs               []string `json:"ids,omitempty"`
	CountryStartsWith string   `json:"countryStartsWith,omitempty"`
}

// OrderQuery configures POST /query/orders.
type OrderQuery struct {
	QueryParams
	Freight float64 `json:"freight,omitempty"`
}
