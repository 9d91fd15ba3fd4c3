// Package browse holds the view-independent browsing logic: per-list
// pagination/sort/filter state with derived remote query parameters and
// fetch generations, client-side narrowing of fetched pages, and customer
// aggregate helpers for the detail views. The UI consumes this package;
// nothing here renders or fetches.
package browse
