// Package ui provides the Bubble Tea terminal interface for Freighter.
//
// Four views are available: the customers and orders lists (paged,
// sortable, filterable) and the customer and order detail drill-downs.
// The package is a thin rendering layer: pagination, sorting, and
// filtering decisions live in internal/browse, cross-view order handoff
// in internal/selection, and all fetching goes through the
// northwind.Querier given in Options. Fetches run as tea.Cmd goroutines;
// each list response carries the generation it was requested under and is
// dropped when a later state change has superseded it.
package ui
