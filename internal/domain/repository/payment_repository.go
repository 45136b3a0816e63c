package repository

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/errors"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicatePayment is returned when a second payment is created for an order.
	ErrDuplicatePayment = errors.New("payment already exists for order")
)

// PaymentFilter restricts payment listings. Nil fields mean "no restriction".
// Branch and customer scoping go through the owning order.
type PaymentFilter struct {
	BranchID   *uint
	CustomerID *uint
	Status     *entity.PaymentStatus
}

// PaymentRepository defines the interface for payment-related database operations.
type PaymentRepository interface {
	// CreatePayment persists a new payment. The unique order constraint makes
	// a concurrent duplicate surface as ErrDuplicatePayment.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByOrder retrieves the payment of an order, if any.
	FindPaymentByOrder(ctx context.Context, orderID uint) (*entity.Payment, error)

	// ListPayments retrieves payments matching the filter, newest first.
	ListPayments(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)

	// UpdatePaymentStatus updates the settlement status of a payment.
	UpdatePaymentStatus(ctx context.Context, id uint, status entity.PaymentStatus) error
}
