package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestOrder_JSONWireShape(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	order := Order{
		ID:              7,
		Status:          OrderStatusPending,
		TotalAmount:     decimal.RequireFromString("53.25"),
		CustomerID:      42,
		BranchID:        1,
		DeliveryAddress: "12 Main Street",
		Items: []OrderItem{
			{ID: 1, OrderID: 7, MenuItemID: 3, Quantity: 2, UnitPrice: decimal.RequireFromString("24.50"), Subtotal: decimal.RequireFromString("49.00")},
		},
		Payment:   &Payment{ID: 9, OrderID: 7, Amount: decimal.RequireFromString("53.25"), Method: PaymentMethodCard, Status: PaymentStatusCompleted},
		CreatedAt: now,
		UpdatedAt: now,
	}

	m := marshalToMap(t, order)

	assert.Equal(t, float64(7), m["id"])
	assert.Equal(t, "PENDING", m["status"])
	assert.Equal(t, "53.25", m["total_amount"])
	assert.Equal(t, float64(42), m["customer_id"])
	assert.Equal(t, float64(1), m["branch_id"])
	assert.Equal(t, "12 Main Street", m["delivery_address"])
	assert.Contains(t, m, "items")
	assert.Contains(t, m, "payment")
	assert.Contains(t, m, "created_at")
	assert.Contains(t, m, "updated_at")

	item := m["items"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(3), item["menu_item_id"])
	assert.Equal(t, float64(2), item["quantity"])
	assert.Equal(t, "24.50", item["unit_price"])
	assert.Equal(t, "49.00", item["subtotal"])

	payment := m["payment"].(map[string]any)
	assert.Equal(t, float64(9), payment["id"])
	assert.Equal(t, float64(7), payment["order_id"])
	assert.Equal(t, "card", payment["method"])
	assert.Equal(t, "COMPLETED", payment["status"])

	// No Go-cased leftovers.
	assert.NotContains(t, m, "ID")
	assert.NotContains(t, m, "TotalAmount")
	assert.NotContains(t, m, "CustomerID")
}

func TestOrder_JSONOmitsUnpaidCounterOrderFields(t *testing.T) {
	order := Order{ID: 7, Status: OrderStatusPending, TotalAmount: decimal.RequireFromString("20.00")}

	m := marshalToMap(t, order)

	assert.NotContains(t, m, "payment")
	assert.NotContains(t, m, "delivery_address")
}

func TestCatalogEntities_JSONWireShape(t *testing.T) {
	branch := marshalToMap(t, Branch{ID: 2, Name: "Riverside", Address: "88 River Road", Phone: "555-0102"})
	assert.Equal(t, float64(2), branch["id"])
	assert.Equal(t, "88 River Road", branch["address"])
	assert.Equal(t, "555-0102", branch["phone"])

	item := marshalToMap(t, MenuItem{ID: 3, Name: "Ribeye", Price: decimal.RequireFromString("24.50"), Category: "grill", IsAvailable: true, BranchID: 2})
	assert.Equal(t, "Ribeye", item["name"])
	assert.Equal(t, "24.50", item["price"])
	assert.Equal(t, "grill", item["category"])
	assert.Equal(t, true, item["is_available"])
	assert.Equal(t, float64(2), item["branch_id"])

	stock := marshalToMap(t, InventoryItem{ID: 4, Name: "Flour", Quantity: 40, Unit: "kg", Threshold: 10, BranchID: 2})
	assert.Equal(t, float64(40), stock["quantity"])
	assert.Equal(t, "kg", stock["unit"])
	assert.Equal(t, float64(10), stock["threshold"])
	assert.Equal(t, float64(2), stock["branch_id"])
}
