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

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateInventoryItem adds a stocked item to a branch.
func (srv *inventoryService) CreateInventoryItem(ctx context.Context, identity policy.Identity, input *usecase.InventoryItemInput) (*entity.InventoryItem, error) {
	if _, err := policy.CanPerform(identity, policy.ActionAdjustInventory, policy.Target{BranchID: &input.BranchID}); err != nil {
		return nil, err
	}

	item := &entity.InventoryItem{
		Name:      input.Name,
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		Threshold: input.Threshold,
		BranchID:  input.BranchID,
	}

	if err := srv.inventoryRepo.CreateInventoryItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create inventory item")
	}

	return item, nil
}

// ListInventory retrieves the inventory of a branch visible to the identity.
func (srv *inventoryService) ListInventory(ctx context.Context, identity policy.Identity, branchID *uint) ([]*entity.InventoryItem, error) {
	scope, err := policy.CanPerform(identity, policy.ActionViewInventory, policy.Target{BranchID: branchID})
	if err != nil {
		return nil, err
	}

	if scope.BranchID != nil {
		branchID = scope.BranchID
	}
	if branchID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a branch must be selected")
	}

	items, err := srv.inventoryRepo.ListInventoryItems(ctx, *branchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items")
	}

	return items, nil
}

// AdjustQuantity applies a signed stock delta to an inventory item.
func (srv *inventoryService) AdjustQuantity(ctx context.Context, identity policy.Identity, itemID uint, delta int) (*entity.InventoryItem, error) {
	item, err := srv.inventoryRepo.FindInventoryItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, domainerrors.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item")
	}

	if _, err := policy.CanPerform(identity, policy.ActionAdjustInventory, policy.Target{BranchID: &item.BranchID}); err != nil {
		return nil, err
	}

	updated, err := srv.inventoryRepo.AdjustQuantity(ctx, itemID, delta)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("adjustment would drive stock negative")
		}

		return nil, errors.Wrap(err, "failed to adjust inventory quantity")
	}

	if updated.IsLowStock() {
		srv.log(ctx).Warn("Inventory item low on stock",
			slog.Uint64("itemID", uint64(updated.ID)),
			slog.Int("quantity", updated.Quantity),
			slog.Int("threshold", updated.Threshold),
		)
	}

	return updated, nil
}
