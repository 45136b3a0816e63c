package postgres

import (
	"context"

	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/repository"
	"steakz/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inventoryRepository implements the domain.InventoryRepository interface using GORM.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// CreateInventoryItem persists a new inventory item.
func (repo *inventoryRepository) CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	itemM := fromInventoryItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBranchNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindInventoryItemByID retrieves an inventory item by its unique ID.
func (repo *inventoryRepository) FindInventoryItemByID(ctx context.Context, id uint) (*entity.InventoryItem, error) {
	var itemM model.InventoryItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item by id")
	}

	return toInventoryItemDomain(&itemM), nil
}

// ListInventoryItems retrieves the inventory of a branch ordered by name.
func (repo *inventoryRepository) ListInventoryItems(ctx context.Context, branchID uint) ([]*entity.InventoryItem, error) {
	var itemModels []*model.InventoryItemModel
	err := repo.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("name ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items")
	}

	items := make([]*entity.InventoryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toInventoryItemDomain(itemM))
	}

	return items, nil
}

// AdjustQuantity applies a signed delta in a single UPDATE and returns the
// updated row. The quantity CHECK constraint rejects any adjustment that
// would drive stock negative, even under concurrent writers.
func (repo *inventoryRepository) AdjustQuantity(ctx context.Context, id uint, delta int) (*entity.InventoryItem, error) {
	var itemM model.InventoryItemModel
	result := repo.db.WithContext(ctx).
		Model(&itemM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, repository.ErrInsufficientStock
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust inventory quantity")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrInventoryItemNotFound
	}

	return toInventoryItemDomain(&itemM), nil
}

// --- Mapper Functions ---

// toInventoryItemDomain converts a GORM InventoryItemModel to a domain InventoryItem entity.
func toInventoryItemDomain(data *model.InventoryItemModel) *entity.InventoryItem {
	if data == nil {
		return nil
	}

	return &entity.InventoryItem{
		ID:        data.ID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		Unit:      data.Unit,
		Threshold: data.Threshold,
		BranchID:  data.BranchID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromInventoryItemDomain converts a domain InventoryItem entity to a GORM InventoryItemModel.
func fromInventoryItemDomain(data *entity.InventoryItem) *model.InventoryItemModel {
	if data == nil {
		return nil
	}

	return &model.InventoryItemModel{
		ID:        data.ID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		Unit:      data.Unit,
		Threshold: data.Threshold,
		BranchID:  data.BranchID,
	}
}
