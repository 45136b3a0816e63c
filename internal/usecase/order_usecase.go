// Package usecase defines the application's business operation interfaces and
// their input/output types.
package usecase

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	MenuItemID uint `json:"menu_item_id" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput carries everything needed to resolve and create an order.
// Exactly one of BranchID or DeliveryAddress is needed for customers; staff
// orders default to the caller's own branch. CustomerID lets counter staff
// create an order on behalf of a named customer.
type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,dive"`
	BranchID        *uint            `json:"branch_id,omitempty"`
	DeliveryAddress string           `json:"delivery_address,omitempty"`
	CustomerID      *uint            `json:"customer_id,omitempty"`
}

// OrderUsecase defines the order lifecycle operations exposed to transports.
type OrderUsecase interface {
	// CreateOrder resolves pricing and fulfilling branch, then persists the
	// order atomically with its items. The order starts in PENDING.
	CreateOrder(ctx context.Context, identity policy.Identity, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves a single order the identity is allowed to see.
	GetOrder(ctx context.Context, identity policy.Identity, orderID uint) (*entity.Order, error)

	// ListOrders retrieves orders visible to the identity; the requested
	// filter is narrowed by the policy engine's scope filter.
	ListOrders(ctx context.Context, identity policy.Identity, filter repository.OrderFilter) ([]*entity.Order, error)

	// TransitionOrderStatus applies a status change, validating both the
	// role's permitted transition set and state machine reachability.
	// Cancelling an order with a payment refunds that payment atomically.
	TransitionOrderStatus(ctx context.Context, identity policy.Identity, orderID uint, next entity.OrderStatus) (*entity.Order, error)

	// DeleteOrder removes an order, refunding an existing payment first.
	// Delivered orders cannot be deleted.
	DeleteOrder(ctx context.Context, identity policy.Identity, orderID uint) error

	// GetOrderReceipt renders the QR receipt of a paid order.
	GetOrderReceipt(ctx context.Context, identity policy.Identity, orderID uint) ([]byte, error)
}
