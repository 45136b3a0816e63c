package repository

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/errors"
)

// Domain-specific errors for inventory persistence.
var (
	// ErrInventoryItemNotFound is returned when an inventory item is not found.
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	// ErrInsufficientStock is returned when an adjustment would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InventoryRepository defines the interface for inventory database operations.
type InventoryRepository interface {
	// CreateInventoryItem persists a new inventory item.
	CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) error

	// FindInventoryItemByID retrieves an inventory item by its unique ID.
	FindInventoryItemByID(ctx context.Context, id uint) (*entity.InventoryItem, error)

	// ListInventoryItems retrieves the inventory of a branch ordered by name.
	ListInventoryItems(ctx context.Context, branchID uint) ([]*entity.InventoryItem, error)

	// AdjustQuantity applies a signed delta to an item's stock level atomically,
	// failing with ErrInsufficientStock when the result would be negative.
	AdjustQuantity(ctx context.Context, id uint, delta int) (*entity.InventoryItem, error)
}
