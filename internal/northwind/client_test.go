package northwind

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:8080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.com:8080" {
		t.Fatalf("base url = %q, want https://example.com:8080", u.String())
	}

	u, err = parseBaseURL("http://example.com/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_QueryEndpointsEncodeBodies(t *testing.T) {
	t.Parallel()

	var gotCustomerBody map[string]any
	var gotOrderBody map[string]any
	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/query/customers":
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotCustomerBody)
			_ = json.NewEncoder(w).Encode(Page[Customer]{
				Total:   91,
				Results: []Customer{{ID: "ALFKI", CompanyName: "Alfreds Futterkiste"}},
			})
		case "/query/orders":
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotOrderBody)
			_ = json.NewEncoder(w).Encode(Page[Order]{
				Offset:  20,
				Total:   830,
				Results: []Order{{ID: 10248, CustomerID: "VINET"}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	customers, err := c.QueryCustomers(ctx, CustomerQuery{
		QueryParams:       QueryParams{Take: 10, OrderBy: "companyName"},
		CountryStartsWith: "USA",
	})
	if err != nil {
		t.Fatalf("QueryCustomers returned error: %v", err)
	}
	if customers.Total != 91 || len(customers.Results) != 1 || customers.Results[0].ID != "ALFKI" {
		t.Fatalf("QueryCustomers page = %#v, want total=91 ALFKI", customers)
	}
	if gotCustomerBody["take"] != float64(10) ||
		gotCustomerBody["orderBy"] != "companyName" ||
		gotCustomerBody["countryStartsWith"] != "USA" {
		t.Fatalf("customer body = %v, want take/orderBy/countryStartsWith encoded", gotCustomerBody)
	}
	if _, present := gotCustomerBody["orderByDesc"]; present {
		t.Fatalf("customer body = %v, orderByDesc should be omitted", gotCustomerBody)
	}
	if _, present := gotCustomerBody["skip"]; present {
		t.Fatalf("customer body = %v, zero skip should be omitted", gotCustomerBody)
	}

	orders, err := c.QueryOrders(ctx, OrderQuery{
		QueryParams: QueryParams{Skip: 20, Take: 10, OrderByDesc: "id"},
	})
	if err != nil {
		t.Fatalf("QueryOrders returned error: %v", err)
	}
	if orders.Offset != 20 || orders.Results[0].ID != 10248 {
		t.Fatalf("QueryOrders page = %#v, want offset=20 id=10248", orders)
	}
	if gotOrderBody["skip"] != float64(20) || gotOrderBody["orderByDesc"] != "id" {
		t.Fatalf("order body = %v, want skip/orderByDesc encoded", gotOrderBody)
	}
	if _, present := gotOrderBody["orderBy"]; present {
		t.Fatalf("order body = %v, orderBy should be omitted", gotOrderBody)
	}

	if ua := gotHeaders.Get("User-Agent"); !strings.HasPrefix(ua, "freighter/") {
		t.Fatalf("User-Agent = %q, want freighter/*", ua)
	}
	if gotHeaders.Get("X-Request-Id") == "" {
		t.Fatal("X-Request-Id header missing")
	}
	if ct := gotHeaders.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
}

func TestClient_GetCustomerDetails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/customers/ALFKI" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CustomerDetails{
			Customer: Customer{ID: "ALFKI", CompanyName: "Alfreds Futterkiste"},
			Orders: []CustomerOrder{
				{
					Order:        Order{ID: 10643, CustomerID: "ALFKI"},
					OrderDetails: []OrderDetail{{OrderID: 10643, ProductID: 28, UnitPrice: 45.6, Quantity: 15}},
				},
			},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	details, err := c.GetCustomerDetails(context.Background(), "ALFKI")
	if err != nil {
		t.Fatalf("GetCustomerDetails returned error: %v", err)
	}
	if details.Customer.ID != "ALFKI" || len(details.Orders) != 1 || details.Orders[0].Order.ID != 10643 {
		t.Fatalf("details = %#v, want ALFKI with order 10643", details)
	}

	_, err = c.GetCustomerDetails(context.Background(), "  ")
	if err == nil {
		t.Fatal("GetCustomerDetails with blank id returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/query/customers":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/query/orders":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.QueryCustomers(context.Background(), CustomerQuery{})
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("QueryCustomers error = %v, want decode response error", err)
	}

	_, err = c.QueryOrders(context.Background(), OrderQuery{})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("QueryOrders error = %v, want status 500 error", err)
	}
}
