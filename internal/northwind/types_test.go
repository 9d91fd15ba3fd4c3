package northwind

import (
	"encoding/json"
	"testing"
)

func TestOrderDetailLineTotal(t *testing.T) {
	d := OrderDetail{UnitPrice: 10, Quantity: 2, Discount: 0.1}
	if got := d.LineTotal(); got != 18 {
		t.Fatalf("LineTotal = %v, want 18", got)
	}
	d = OrderDetail{UnitPrice: 5, Quantity: 1}
	if got := d.LineTotal(); got != 5 {
		t.Fatalf("LineTotal = %v, want 5", got)
	}
	if got := (OrderDetail{}).LineTotal(); got != 0 {
		t.Fatalf("LineTotal on zero detail = %v, want 0", got)
	}
}

func TestQueryParamsOmitZeroFields(t *testing.T) {
	encoded, err := json.Marshal(CustomerQuery{})
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(encoded) != "{}" {
		t.Fatalf("empty query = %s, want {}", encoded)
	}

	encoded, err = json.Marshal(OrderQuery{QueryParams: QueryParams{Take: 10, OrderByDesc: "id"}})
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if len(decoded) != 2 || decoded["take"] != float64(10) || decoded["orderByDesc"] != "id" {
		t.Fatalf("order query = %v, want exactly take and orderByDesc", decoded)
	}
}
