package browse

import "freighter/internal/northwind"

// FilterAll is the country filter value meaning "no filter".
const FilterAll = "all"

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 10

// ListState holds the user-adjustable pagination, sort, and filter intent
// for one list view. It derives the remote query parameters and tracks a
// fetch generation so callers can discard responses that a later state
// change has superseded.
//
// SearchTerm never touches the remote query: it narrows the loaded page
// client-side only, so changing it does not bump the generation.
type ListState struct {
	page          int
	pageSize      int
	sortField     string
	sortDesc      bool
	searchTerm    string
	countryFilter string

	gen uint64
}

// NewListState returns a list state with the given page size, no sort, and
// no filters. A non-positive size falls back to DefaultPageSize.
func NewListState(pageSize int) ListState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ListState{pageSize: pageSize, countryFilter: FilterAll}
}

// NewOrderListState returns the list state the orders view starts with:
// newest orders first.
func NewOrderListState(pageSize int) ListState {
	s := NewListState(pageSize)
	s.sortField = "id"
	s.sortDesc = true
	return s
}

// Page returns the current zero-based page index.
func (s *ListState) Page() int { return s.page }

// PageSize returns the current page size.
func (s *ListState) PageSize() int { return s.pageSize }

// SortField returns the current sort field, empty when unsorted.
func (s *ListState) SortField() string { return s.sortField }

// SortDesc reports whether the sort direction is descending.
func (s *ListState) SortDesc() bool { return s.sortDesc }

// SearchTerm returns the client-side search term.
func (s *ListState) SearchTerm() string { return s.searchTerm }

// CountryFilter returns the country filter, FilterAll when inactive.
func (s *ListState) CountryFilter() string { return s.countryFilter }

// SetPage sets the page index and supersedes any in-flight fetch.
func (s *ListState) SetPage(page int) uint64 {
	s.page = page
	return s.bump()
}

// SetPageSize sets the page size and supersedes any in-flight fetch. The
// value is not validated; callers own keeping it positive.
func (s *ListState) SetPageSize(size int) uint64 {
	s.pageSize = size
	return s.bump()
}

// SetSearchTerm sets the client-side search term. The generation is left
// alone: no refetch is needed.
func (s *ListState) SetSearchTerm(term string) {
	s.searchTerm = term
}

// SetCountryFilter sets the country filter and supersedes any in-flight
// fetch.
func (s *ListState) SetCountryFilter(country string) uint64 {
	s.countryFilter = country
	return s.bump()
}

// ToggleSort cycles the sort for a column: first activation sorts the
// field ascending, a second flips to descending, and toggling a different
// field resets to ascending on that field.
func (s *ListState) ToggleSort(field string) uint64 {
	if s.sortField == field {
		s.sortDesc = !s.sortDesc
	} else {
		s.sortField = field
		s.sortDesc = false
	}
	return s.bump()
}

// Params derives the remote query parameters for the current state.
// Exactly one of OrderBy/OrderByDesc is set when a sort field is active.
func (s *ListState) Params() northwind.QueryParams {
	p := northwind.QueryParams{
		Skip: s.page * s.pageSize,
		Take: s.pageSize,
	}
	if s.sortField != "" {
		if s.sortDesc {
			p.OrderByDesc = s.sortField
		} else {
			p.OrderBy = s.sortField
		}
	}
	return p
}

// CustomerQuery derives the full customer list query, including the
// country filter when one is active.
func (s *ListState) CustomerQuery() northwind.CustomerQuery {
	q := northwind.CustomerQuery{QueryParams: s.Params()}
	if s.countryFilter != "" && s.countryFilter != FilterAll {
		q.CountryStartsWith = s.countryFilter
	}
	return q
}

// OrderQuery derives the full order list query.
func (s *ListState) OrderQuery() northwind.OrderQuery {
	return northwind.OrderQuery{QueryParams: s.Params()}
}

// Generation returns the current fetch generation.
func (s *ListState) Generation() uint64 { return s.gen }

// Current reports whether a fetch started at generation gen is still the
// newest one, i.e. whether its response should be applied.
func (s *ListState) Current(gen uint64) bool { return gen == s.gen }

func (s *ListState) bump() uint64 {
	s.gen++
	return s.gen
}
