package repository

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/errors"
)

// ErrBranchNotFound is returned when a branch is not found.
var ErrBranchNotFound = errors.New("branch not found")

// BranchRepository defines the interface for branch-related database operations.
type BranchRepository interface {
	// CreateBranch persists a new branch.
	CreateBranch(ctx context.Context, branch *entity.Branch) error

	// FindBranchByID retrieves a branch by its unique ID.
	FindBranchByID(ctx context.Context, id uint) (*entity.Branch, error)

	// ListBranches retrieves all branches ordered by creation time.
	ListBranches(ctx context.Context) ([]*entity.Branch, error)

	// UpdateBranch persists changes to an existing branch.
	UpdateBranch(ctx context.Context, branch *entity.Branch) error

	// DeleteBranch removes a branch by its ID.
	DeleteBranch(ctx context.Context, id uint) error
}
