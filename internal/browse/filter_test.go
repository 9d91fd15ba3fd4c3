package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"freighter/internal/northwind"
)

var customerPage = []northwind.Customer{
	{ID: "ALFKI", CompanyName: "Alfreds Futterkiste", ContactName: "Maria Anders", City: "Berlin", Country: "Germany"},
	{ID: "ANATR", CompanyName: "Ana Trujillo Emparedados", ContactName: "Ana Trujillo", City: "México D.F.", Country: "Mexico"},
	{ID: "AROUT", CompanyName: "Around the Horn", ContactName: "Thomas Hardy", City: "London", Country: "UK"},
	{ID: "BERGS", CompanyName: "Berglunds snabbköp", ContactName: "Christina Berglund", City: "Luleå", Country: "Sweden"},
}

func TestFilterCustomers(t *testing.T) {
	got := FilterCustomers(customerPage, "")
	assert.Equal(t, customerPage, got, "empty term returns the page unchanged")

	got = FilterCustomers(customerPage, "zzzz")
	assert.Empty(t, got)

	got = FilterCustomers(customerPage, "LONDON")
	assert.Len(t, got, 1)
	assert.Equal(t, "AROUT", got[0].ID)

	// Substring across any of the defined fields.
	got = FilterCustomers(customerPage, "ana")
	assert.Len(t, got, 1)
	assert.Equal(t, "ANATR", got[0].ID)

	got = FilterCustomers(customerPage, "er")
	assert.Equal(t, []string{"ALFKI", "BERGS"}, customerIDs(got))
}

func TestFilterOrders(t *testing.T) {
	page := []northwind.Order{
		{ID: 10248, CustomerID: "VINET", ShipName: "Vins et alcools Chevalier", ShipCity: "Reims", ShipCountry: "France"},
		{ID: 10249, CustomerID: "TOMSP", ShipName: "Toms Spezialitäten", ShipCity: "Münster", ShipCountry: "Germany"},
	}

	assert.Equal(t, page, FilterOrders(page, ""))
	assert.Empty(t, FilterOrders(page, "nomatch"))

	got := FilterOrders(page, "10248")
	assert.Len(t, got, 1)
	assert.Equal(t, 10248, got[0].ID)

	got = FilterOrders(page, "toms")
	assert.Len(t, got, 1)
	assert.Equal(t, "TOMSP", got[0].CustomerID)

	got = FilterOrders(page, "1024")
	assert.Len(t, got, 2, "id match is substring, not equality")
}

func TestCountries(t *testing.T) {
	rows := []northwind.Customer{
		{ID: "A", Country: "Mexico"},
		{ID: "B", Country: "Germany"},
		{ID: "C", Country: ""},
		{ID: "D", Country: "Germany"},
		{ID: "E", Country: "Brazil"},
	}
	got := Countries(rows)
	assert.Equal(t, []string{"Brazil", "Germany", "Mexico"}, got)

	assert.Empty(t, Countries(nil))
}

func customerIDs(rows []northwind.Customer) []string {
	ids := make([]string, 0, len(rows))
	for _, c := range rows {
		ids = append(ids, c.ID)
	}
	return ids
}
