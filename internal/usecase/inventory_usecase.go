package usecase

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/policy"
)

// InventoryItemInput carries inventory item creation data.
type InventoryItemInput struct {
	Name      string `json:"name" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Unit      string `json:"unit" validate:"required"`
	Threshold int    `json:"threshold" validate:"gte=0"`
	BranchID  uint   `json:"branch_id" validate:"required"`
}

// InventoryUsecase defines branch inventory operations.
type InventoryUsecase interface {
	// CreateInventoryItem adds a stocked item to a branch.
	CreateInventoryItem(ctx context.Context, identity policy.Identity, input *InventoryItemInput) (*entity.InventoryItem, error)

	// ListInventory retrieves the inventory of a branch visible to the identity.
	ListInventory(ctx context.Context, identity policy.Identity, branchID *uint) ([]*entity.InventoryItem, error)

	// AdjustQuantity applies a signed stock delta to an inventory item.
	AdjustQuantity(ctx context.Context, identity policy.Identity, itemID uint, delta int) (*entity.InventoryItem, error)
}
