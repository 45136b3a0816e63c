package postgres

import (
	"context"

	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/repository"
	"steakz/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuItemRepository implements the domain.MenuItemRepository interface using GORM.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{db: db}
}

// CreateMenuItem persists a new menu item.
func (repo *menuItemRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBranchNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindMenuItemByID retrieves a menu item by its unique ID.
func (repo *menuItemRepository) FindMenuItemByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by id")
	}

	return toMenuItemDomain(&itemM), nil
}

// ListMenuItems retrieves the menu of a branch ordered by category and name.
func (repo *menuItemRepository) ListMenuItems(ctx context.Context, branchID uint) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel
	err := repo.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("category ASC, name ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// UpdateMenuItem persists changes to an existing menu item.
func (repo *menuItemRepository) UpdateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", itemM.ID).
		Updates(map[string]any{
			"name":         itemM.Name,
			"price":        itemM.Price,
			"category":     itemM.Category,
			"is_available": itemM.IsAvailable,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// SetAvailability toggles whether a menu item can be ordered.
func (repo *menuItemRepository) SetAvailability(ctx context.Context, id uint, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", id).
		Update("is_available", available)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set menu item availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// DeleteMenuItem removes a menu item by its ID.
func (repo *menuItemRepository) DeleteMenuItem(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.MenuItemModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMenuItemDomain converts a GORM MenuItemModel to a domain MenuItem entity.
func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Category:    data.Category,
		IsAvailable: data.IsAvailable,
		BranchID:    data.BranchID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMenuItemDomain converts a domain MenuItem entity to a GORM MenuItemModel for persistence.
func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Category:    data.Category,
		IsAvailable: data.IsAvailable,
		BranchID:    data.BranchID,
	}
}
