package usecase

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/policy"
)

// BranchInput carries branch creation or update data.
type BranchInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone,omitempty"`
}

// BranchUsecase defines branch management operations.
type BranchUsecase interface {
	// CreateBranch creates a new branch; management roles only.
	CreateBranch(ctx context.Context, identity policy.Identity, input *BranchInput) (*entity.Branch, error)

	// ListBranches retrieves all branches. Listing is public: customers pick
	// a branch when ordering.
	ListBranches(ctx context.Context) ([]*entity.Branch, error)

	// UpdateBranch updates an existing branch; management roles only.
	UpdateBranch(ctx context.Context, identity policy.Identity, id uint, input *BranchInput) (*entity.Branch, error)

	// DeleteBranch removes a branch; management roles only.
	DeleteBranch(ctx context.Context, identity policy.Identity, id uint) error
}
