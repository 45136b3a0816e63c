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

// menuService implements the MenuUsecase interface.
type menuService struct {
	menuRepo   repository.MenuItemRepository
	branchRepo repository.BranchRepository
	logger     *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	MenuRepo   repository.MenuItemRepository
	BranchRepo repository.BranchRepository
	Logger     *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		menuRepo:   params.MenuRepo,
		branchRepo: params.BranchRepo,
		logger:     params.Logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMenuItem adds an item to a branch menu.
func (srv *menuService) CreateMenuItem(ctx context.Context, identity policy.Identity, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	if _, err := policy.CanPerform(identity, policy.ActionManageMenu, policy.Target{BranchID: &input.BranchID}); err != nil {
		return nil, err
	}

	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	if _, err := srv.branchRepo.FindBranchByID(ctx, input.BranchID); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			return nil, domainerrors.ErrBranchNotFound
		}

		return nil, errors.Wrap(err, "failed to find branch")
	}

	item := &entity.MenuItem{
		Name:        input.Name,
		Price:       input.Price.Round(2),
		Category:    input.Category,
		IsAvailable: input.IsAvailable,
		BranchID:    input.BranchID,
	}

	if err := srv.menuRepo.CreateMenuItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}

	srv.log(ctx).Info("Menu item created",
		slog.Uint64("menuItemID", uint64(item.ID)),
		slog.Uint64("branchID", uint64(item.BranchID)),
	)

	return item, nil
}

// ListMenu retrieves the menu of a branch.
func (srv *menuService) ListMenu(ctx context.Context, branchID uint) ([]*entity.MenuItem, error) {
	items, err := srv.menuRepo.ListMenuItems(ctx, branchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

// UpdateMenuItem updates an existing menu item.
func (srv *menuService) UpdateMenuItem(ctx context.Context, identity policy.Identity, id uint, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	item, err := srv.loadManagedItem(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	item.Name = input.Name
	item.Price = input.Price.Round(2)
	item.Category = input.Category
	item.IsAvailable = input.IsAvailable

	if err := srv.menuRepo.UpdateMenuItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update menu item")
	}

	return item, nil
}

// SetAvailability toggles whether a menu item can be ordered.
func (srv *menuService) SetAvailability(ctx context.Context, identity policy.Identity, id uint, available bool) error {
	if _, err := srv.loadManagedItem(ctx, identity, id); err != nil {
		return err
	}

	if err := srv.menuRepo.SetAvailability(ctx, id, available); err != nil {
		return errors.Wrap(err, "failed to set menu item availability")
	}

	return nil
}

// DeleteMenuItem removes a menu item.
func (srv *menuService) DeleteMenuItem(ctx context.Context, identity policy.Identity, id uint) error {
	if _, err := srv.loadManagedItem(ctx, identity, id); err != nil {
		return err
	}

	if err := srv.menuRepo.DeleteMenuItem(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete menu item")
	}

	return nil
}

// loadManagedItem loads a menu item and checks the identity may manage the
// branch owning it.
func (srv *menuService) loadManagedItem(ctx context.Context, identity policy.Identity, id uint) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.FindMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	if _, err := policy.CanPerform(identity, policy.ActionManageMenu, policy.Target{BranchID: &item.BranchID}); err != nil {
		return nil, err
	}

	return item, nil
}
