package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order assigned to a single branch.
// TotalAmount equals the sum of its items' subtotals, frozen at creation.
type Order struct {
	ID              uint            `json:"id"`                         // Unique identifier of the order.
	Status          OrderStatus     `json:"status"`                     // Current lifecycle status.
	TotalAmount     decimal.Decimal `json:"total_amount"`               // Sum of item subtotals at creation time.
	CustomerID      uint            `json:"customer_id"`                // The customer the order belongs to.
	BranchID        uint            `json:"branch_id"`                  // The fulfilling branch.
	DeliveryAddress string          `json:"delivery_address,omitempty"` // Free-text delivery address; empty for counter orders.
	Items           []OrderItem     `json:"items"`                      // Line items, exclusively owned by the order.
	Payment         *Payment        `json:"payment,omitempty"`          // Optional one-to-one payment; nil until paid.
	CreatedAt       time.Time       `json:"created_at"`                 // Timestamp of when this order was created.
	UpdatedAt       time.Time       `json:"updated_at"`                 // Timestamp of the last modification.
}

// OrderItem is a single priced line of an order. UnitPrice is a snapshot of
// the catalog price at order creation; the line is immutable afterwards.
type OrderItem struct {
	ID         uint            `json:"id"`           // Unique identifier of the line.
	OrderID    uint            `json:"order_id"`     // Owning order.
	MenuItemID uint            `json:"menu_item_id"` // The ordered catalog item.
	Quantity   int             `json:"quantity"`     // Ordered quantity, strictly positive.
	UnitPrice  decimal.Decimal `json:"unit_price"`   // Catalog price snapshot at creation time.
	Subtotal   decimal.Decimal `json:"subtotal"`     // UnitPrice multiplied by Quantity.
}
