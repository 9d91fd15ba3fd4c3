package browse

import (
	"sort"
	"strconv"
	"strings"

	"freighter/internal/northwind"
)

// FilterCustomers narrows an already-fetched page of customers to rows
// whose company name, contact name, city, or country contains the term
// (case-insensitive). An empty term returns rows unchanged. This only ever
// narrows the loaded page; it does not requery the collection.
func FilterCustomers(rows []northwind.Customer, term string) []northwind.Customer {
	term = strings.ToLower(term)
	if term == "" {
		return rows
	}
	out := make([]northwind.Customer, 0, len(rows))
	for _, c := range rows {
		if containsFold(term, c.CompanyName, c.ContactName, c.City, c.Country) {
			out = append(out, c)
		}
	}
	return out
}

// FilterOrders narrows an already-fetched page of orders to rows whose id,
// customer id, ship name, ship city, or ship country contains the term
// (case-insensitive).
func FilterOrders(rows []northwind.Order, term string) []northwind.Order {
	term = strings.ToLower(term)
	if term == "" {
		return rows
	}
	out := make([]northwind.Order, 0, len(rows))
	for _, o := range rows {
		if containsFold(term, strconv.Itoa(o.ID), o.CustomerID, o.ShipName, o.ShipCity, o.ShipCountry) {
			out = append(out, o)
		}
	}
	return out
}

// Countries collects the distinct non-empty countries present in the
// loaded (unfiltered) page, sorted ascending, for use as filter options.
func Countries(rows []northwind.Customer) []string {
	seen := make(map[string]struct{}, len(rows))
	var out []string
	for _, c := range rows {
		if c.Country == "" {
			continue
		}
		if _, ok := seen[c.Country]; ok {
			continue
		}
		seen[c.Country] = struct{}{}
		out = append(out, c.Country)
	}
	sort.Strings(out)
	return out
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
