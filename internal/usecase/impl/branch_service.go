package impl

import (
	"context"
	"log/slog"

	deliverycontext "steakz/internal/delivery/context"
	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"
	"steakz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// branchService implements the BranchUsecase interface.
type branchService struct {
	branchRepo repository.BranchRepository
	logger     *slog.Logger
}

// BranchServiceParams holds dependencies for BranchService, injected by Fx.
type BranchServiceParams struct {
	fx.In

	BranchRepo repository.BranchRepository
	Logger     *slog.Logger
}

// NewBranchService is the constructor for branchService.
func NewBranchService(params BranchServiceParams) usecase.BranchUsecase {
	return &branchService{
		branchRepo: params.BranchRepo,
		logger:     params.Logger,
	}
}

func (srv *branchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBranch creates a new branch; management roles only.
func (srv *branchService) CreateBranch(ctx context.Context, identity policy.Identity, input *usecase.BranchInput) (*entity.Branch, error) {
	if _, err := policy.CanPerform(identity, policy.ActionManageBranches, policy.Target{}); err != nil {
		return nil, err
	}

	branch := &entity.Branch{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}

	if err := srv.branchRepo.CreateBranch(ctx, branch); err != nil {
		return nil, errors.Wrap(err, "failed to create branch")
	}

	srv.log(ctx).Info("Branch created", slog.Uint64("branchID", uint64(branch.ID)))

	return branch, nil
}

// ListBranches retrieves all branches.
func (srv *branchService) ListBranches(ctx context.Context) ([]*entity.Branch, error) {
	branches, err := srv.branchRepo.ListBranches(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list branches")
	}

	return branches, nil
}

// UpdateBranch updates an existing branch; management roles only.
func (srv *branchService) UpdateBranch(ctx context.Context, identity policy.Identity, id uint, input *usecase.BranchInput) (*entity.Branch, error) {
	if _, err := policy.CanPerform(identity, policy.ActionManageBranches, policy.Target{}); err != nil {
		return nil, err
	}

	branch, err := srv.branchRepo.FindBranchByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return nil, domainerrors.ErrBranchNotFound
		}

		return nil, errors.Wrap(err, "failed to find branch")
	}

	branch.Name = input.Name
	branch.Address = input.Address
	branch.Phone = input.Phone

	if err := srv.branchRepo.UpdateBranch(ctx, branch); err != nil {
		return nil, errors.Wrap(err, "failed to update branch")
	}

	return branch, nil
}

// DeleteBranch removes a branch; management roles only.
func (srv *branchService) DeleteBranch(ctx context.Context, identity policy.Identity, id uint) error {
	if _, err := policy.CanPerform(identity, policy.ActionManageBranches, policy.Target{}); err != nil {
		return err
	}

	if err := srv.branchRepo.DeleteBranch(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return domainerrors.ErrBranchNotFound
		}

		return errors.Wrap(err, "failed to delete branch")
	}

	srv.log(ctx).Info("Branch deleted", slog.Uint64("branchID", uint64(id)))

	return nil
}
