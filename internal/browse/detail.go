package browse

import "freighter/internal/northwind"

// FindOrder locates the order with the given id inside a customer
// aggregate. Returns false when the aggregate is nil or holds no such
// order, e.g. when the selection that led here is stale.
func FindOrder(details *northwind.CustomerDetails, orderID int) (northwind.CustomerOrder, bool) {
	if details == nil {
		return northwind.CustomerOrder{}, false
	}
	for _, co := range details.Orders {
		if co.Order.ID == orderID {
			return co, true
		}
	}
	return northwind.CustomerOrder{}, false
}

// OrderLines returns the line items for the given order id, or an empty
// slice when the aggregate holds no match.
func OrderLines(details *northwind.CustomerDetails, orderID int) []northwind.OrderDetail {
	co, ok := FindOrder(details, orderID)
	if !ok {
		return nil
	}
	return co.OrderDetails
}

// OrderTotal sums the extended line totals of an order. Zero for an empty
// set of lines.
func OrderTotal(lines []northwind.OrderDetail) float64 {
	var total float64
	for _, d := range lines {
		total += d.LineTotal()
	}
	return total
}
