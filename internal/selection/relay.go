// Package selection carries the order a user picked in one view across the
// navigation boundary into the order detail view, which has no other way
// to receive it. One slot, latest write wins, process lifetime.
package selection

import (
	"sync"

	"freighter/internal/northwind"
)

// Relay is a single-slot holder for the most recently selected order.
// Safe for concurrent use; in practice writes come from single key-press
// handlers.
type Relay struct {
	mu    sync.Mutex
	order northwind.Order
	set   bool
}

// Set overwrites the slot with the given order. No merge, no history.
func (r *Relay) Set(order northwind.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = order
	r.set = true
}

// Peek returns the current order without consuming it. ok is false when
// nothing has been set since the last Take.
func (r *Relay) Peek() (northwind.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order, r.set
}

// Take returns the current order and clears the slot, so a stale selection
// cannot leak into an unrelated later navigation.
func (r *Relay) Take() (northwind.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.order, r.set
	r.order = northwind.Order{}
	r.set = false
	return order, ok
}
