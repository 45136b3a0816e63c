package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Items are exclusively owned and
// removed by cascade when the order is deleted.
type OrderModel struct {
	ID              uint            `gorm:"primaryKey"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CustomerID      uint            `gorm:"not null;index"`
	BranchID        uint            `gorm:"not null;index"`
	DeliveryAddress string          `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items   []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment *PaymentModel    `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. UnitPrice and Subtotal are
// price snapshots frozen at order creation.
type OrderItemModel struct {
	ID         uint            `gorm:"primaryKey"`
	OrderID    uint            `gorm:"not null;index"`
	MenuItemID uint            `gorm:"not null"`
	Quantity   int             `gorm:"not null;check:quantity > 0"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
