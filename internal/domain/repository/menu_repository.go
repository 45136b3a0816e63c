package repository

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/errors"
)

// ErrMenuItemNotFound is returned when a menu item is not found.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository defines the interface for menu catalog database operations.
type MenuItemRepository interface {
	// CreateMenuItem persists a new menu item.
	CreateMenuItem(ctx context.Context, item *entity.MenuItem) error

	// FindMenuItemByID retrieves a menu item by its unique ID.
	FindMenuItemByID(ctx context.Context, id uint) (*entity.MenuItem, error)

	// ListMenuItems retrieves the menu of a branch ordered by category and name.
	ListMenuItems(ctx context.Context, branchID uint) ([]*entity.MenuItem, error)

	// UpdateMenuItem persists changes to an existing menu item.
	UpdateMenuItem(ctx context.Context, item *entity.MenuItem) error

	// SetAvailability toggles whether a menu item can be ordered.
	SetAvailability(ctx context.Context, id uint, available bool) error

	// DeleteMenuItem removes a menu item by its ID.
	DeleteMenuItem(ctx context.Context, id uint) error
}
