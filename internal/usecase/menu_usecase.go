package usecase

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/policy"

	"github.com/shopspring/decimal"
)

// MenuItemInput carries menu item creation or update data.
type MenuItemInput struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	IsAvailable bool            `json:"is_available"`
	BranchID    uint            `json:"branch_id" validate:"required"`
}

// MenuUsecase defines menu catalog operations.
type MenuUsecase interface {
	// CreateMenuItem adds an item to a branch menu; branch managers may only
	// touch their own branch.
	CreateMenuItem(ctx context.Context, identity policy.Identity, input *MenuItemInput) (*entity.MenuItem, error)

	// ListMenu retrieves the menu of a branch. Listing is public.
	ListMenu(ctx context.Context, branchID uint) ([]*entity.MenuItem, error)

	// UpdateMenuItem updates an existing menu item.
	UpdateMenuItem(ctx context.Context, identity policy.Identity, id uint, input *MenuItemInput) (*entity.MenuItem, error)

	// SetAvailability toggles whether a menu item can be ordered.
	SetAvailability(ctx context.Context, identity policy.Identity, id uint, available bool) error

	// DeleteMenuItem removes a menu item.
	DeleteMenuItem(ctx context.Context, identity policy.Identity, id uint) error
}
