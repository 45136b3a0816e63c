package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. The unique index on OrderID
// enforces at most one payment per order at the database level, closing the
// race between two concurrent payment attempts.
type PaymentModel struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method    string          `gorm:"type:varchar(20);not null"`
	Status    string          `gorm:"type:varchar(20);not null;index"`
	Reference string          `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
