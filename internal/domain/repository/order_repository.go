// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when a conditional status update
	// matched no row, i.e. the order's status changed since it was read.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderFilter restricts order listings. Nil fields mean "no restriction".
type OrderFilter struct {
	BranchID   *uint
	CustomerID *uint
	Status     *entity.OrderStatus
}

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items and payment.
	FindOrderByID(ctx context.Context, id uint) (*entity.Order, error)

	// ListOrders retrieves orders matching the filter, newest first.
	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateOrderStatus conditionally moves an order from the expected current
	// status to the next one. When the row no longer carries the expected
	// status, ErrOrderStatusConflict is returned and nothing is written.
	UpdateOrderStatus(ctx context.Context, id uint, expected, next entity.OrderStatus) error

	// DeleteOrder removes an order and, by cascade, its items.
	DeleteOrder(ctx context.Context, id uint) error
}
