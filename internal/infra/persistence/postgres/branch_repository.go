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

// branchRepository implements the domain.BranchRepository interface using GORM.
type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository is the constructor for branchRepository.
func NewBranchRepository(db *gorm.DB) repository.BranchRepository {
	return &branchRepository{db: db}
}

// CreateBranch persists a new branch.
func (repo *branchRepository) CreateBranch(ctx context.Context, branch *entity.Branch) error {
	branchM := fromBranchDomain(branch)

	if err := repo.db.WithContext(ctx).Create(branchM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create branch")
	}

	branch.ID = branchM.ID
	branch.CreatedAt = branchM.CreatedAt
	branch.UpdatedAt = branchM.UpdatedAt

	return nil
}

// FindBranchByID retrieves a branch by its unique ID.
func (repo *branchRepository) FindBranchByID(ctx context.Context, id uint) (*entity.Branch, error) {
	var branchM model.BranchModel
	if err := repo.db.WithContext(ctx).First(&branchM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBranchNotFound
		}

		return nil, errors.Wrap(err, "failed to find branch by id")
	}

	return toBranchDomain(&branchM), nil
}

// ListBranches retrieves all branches ordered by creation time.
func (repo *branchRepository) ListBranches(ctx context.Context) ([]*entity.Branch, error) {
	var branchModels []*model.BranchModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&branchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list branches")
	}

	branches := make([]*entity.Branch, 0, len(branchModels))
	for _, branchM := range branchModels {
		branches = append(branches, toBranchDomain(branchM))
	}

	return branches, nil
}

// UpdateBranch persists changes to an existing branch.
func (repo *branchRepository) UpdateBranch(ctx context.Context, branch *entity.Branch) error {
	branchM := fromBranchDomain(branch)

	result := repo.db.WithContext(ctx).
		Model(&model.BranchModel{}).
		Where("id = ?", branchM.ID).
		Updates(map[string]any{
			"name":    branchM.Name,
			"address": branchM.Address,
			"phone":   branchM.Phone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update branch")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBranchNotFound
	}

	return nil
}

// DeleteBranch removes a branch by its ID.
func (repo *branchRepository) DeleteBranch(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.BranchModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete branch")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBranchNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBranchDomain converts a GORM BranchModel to a domain Branch entity.
func toBranchDomain(data *model.BranchModel) *entity.Branch {
	if data == nil {
		return nil
	}

	return &entity.Branch{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBranchDomain converts a domain Branch entity to a GORM BranchModel for persistence.
func fromBranchDomain(data *entity.Branch) *model.BranchModel {
	if data == nil {
		return nil
	}

	return &model.BranchModel{
		ID:      data.ID,
		Name:    data.Name,
		Address: data.Address,
		Phone:   data.Phone,
	}
}
