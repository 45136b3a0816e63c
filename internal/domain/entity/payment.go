package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	// PaymentStatusPending indicates a payment awaiting settlement.
	PaymentStatusPending PaymentStatus = "PENDING"
	// PaymentStatusCompleted indicates a settled payment.
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	// PaymentStatusFailed indicates settlement failed.
	PaymentStatusFailed PaymentStatus = "FAILED"
	// PaymentStatusRefunded indicates the payment was returned to the customer.
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	// PaymentMethodCash is payment in cash at the counter.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodCard is payment by debit or credit card.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodOnline is payment through an online channel.
	PaymentMethodOnline PaymentMethod = "online"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline:
		return true
	default:
		return false
	}
}

// Payment is the settlement record of an order. At most one payment exists
// per order, and its amount must equal the order total at creation time.
type Payment struct {
	ID        uint            `json:"id"`         // Unique identifier of the payment.
	OrderID   uint            `json:"order_id"`   // The paid order; unique per payment.
	Amount    decimal.Decimal `json:"amount"`     // Settled amount, equal to the order total.
	Method    PaymentMethod   `json:"method"`     // How the payment was made.
	Status    PaymentStatus   `json:"status"`     // Current settlement status.
	Reference string          `json:"reference"`  // External settlement reference, printed on receipts.
	CreatedAt time.Time       `json:"created_at"` // Timestamp of when this payment was created.
	UpdatedAt time.Time       `json:"updated_at"` // Timestamp of the last modification.
}
