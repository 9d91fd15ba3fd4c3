package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freighter/internal/northwind"
)

func TestParamsSortDirectionExclusive(t *testing.T) {
	s := NewListState(10)
	p := s.Params()
	assert.Empty(t, p.OrderBy)
	assert.Empty(t, p.OrderByDesc)

	s.ToggleSort("companyName")
	p = s.Params()
	assert.Equal(t, "companyName", p.OrderBy)
	assert.Empty(t, p.OrderByDesc)

	s.ToggleSort("companyName")
	p = s.Params()
	assert.Empty(t, p.OrderBy)
	assert.Equal(t, "companyName", p.OrderByDesc)
}

func TestToggleSortTriState(t *testing.T) {
	s := NewListState(10)

	s.ToggleSort("city")
	assert.Equal(t, "city", s.SortField())
	assert.False(t, s.SortDesc())

	s.ToggleSort("city")
	assert.Equal(t, "city", s.SortField())
	assert.True(t, s.SortDesc())

	s.ToggleSort("city")
	assert.Equal(t, "city", s.SortField())
	assert.False(t, s.SortDesc())

	s.ToggleSort("city")
	require.True(t, s.SortDesc())
	s.ToggleSort("country")
	assert.Equal(t, "country", s.SortField())
	assert.False(t, s.SortDesc(), "switching fields resets to ascending")
}

func TestParamsPagination(t *testing.T) {
	s := NewListState(25)
	s.SetPage(3)
	p := s.Params()
	assert.Equal(t, 75, p.Skip)
	assert.Equal(t, 25, p.Take)

	s.SetPageSize(10)
	s.SetPage(0)
	p = s.Params()
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 10, p.Take)
}

func TestCustomerQueryCountryFilter(t *testing.T) {
	s := NewListState(10)
	q := s.CustomerQuery()
	assert.Empty(t, q.CountryStartsWith, "filter %q sends no countryStartsWith", FilterAll)

	s.SetCountryFilter("Germany")
	q = s.CustomerQuery()
	assert.Equal(t, "Germany", q.CountryStartsWith)

	s.SetCountryFilter(FilterAll)
	q = s.CustomerQuery()
	assert.Empty(t, q.CountryStartsWith)
}

func TestEndToEndCustomerQuery(t *testing.T) {
	s := NewListState(10)
	s.SetCountryFilter("USA")
	s.ToggleSort("companyName")
	s.SetPage(0)

	q := s.CustomerQuery()
	assert.Equal(t, northwind.CustomerQuery{
		QueryParams:       northwind.QueryParams{Skip: 0, Take: 10, OrderBy: "companyName"},
		CountryStartsWith: "USA",
	}, q)
}

func TestOrderListStateDefaults(t *testing.T) {
	s := NewOrderListState(0)
	assert.Equal(t, DefaultPageSize, s.PageSize())
	assert.Equal(t, "id", s.SortField())
	assert.True(t, s.SortDesc())

	q := s.OrderQuery()
	assert.Equal(t, "id", q.OrderByDesc)
	assert.Empty(t, q.OrderBy)
}

func TestGenerationSupersedesStaleFetches(t *testing.T) {
	s := NewListState(10)
	first := s.SetPage(1)
	assert.True(t, s.Current(first))

	second := s.SetPage(2)
	assert.False(t, s.Current(first), "older fetch must be discarded")
	assert.True(t, s.Current(second))

	third := s.ToggleSort("id")
	assert.False(t, s.Current(second))
	assert.True(t, s.Current(third))

	// Search is client-side only and must not invalidate the fetch.
	s.SetSearchTerm("vin")
	assert.True(t, s.Current(third))
}
