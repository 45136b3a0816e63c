package impl

import (
	"context"
	"testing"

	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/repository"
	mockRepo "steakz/internal/mocks/repository"
	"steakz/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	inventoryRepo *mockRepo.MockInventoryRepository
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)

	service := NewInventoryService(InventoryServiceParams{
		InventoryRepo: inventoryRepo,
		Logger:        newDiscardLogger(),
	})

	return inventoryServiceFixtures{
		service:       service,
		inventoryRepo: inventoryRepo,
	}
}

func TestInventoryService_CreateInventoryItem_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := &usecase.InventoryItemInput{
		Name:      "Beef tenderloin",
		Quantity:  40,
		Unit:      "kg",
		Threshold: 10,
		BranchID:  3,
	}

	fx.inventoryRepo.EXPECT().
		CreateInventoryItem(ctx, mock.AnythingOfType("*entity.InventoryItem")).
		Run(func(ctx context.Context, item *entity.InventoryItem) {
			item.ID = 21
		}).
		Return(nil)

	item, err := fx.service.CreateInventoryItem(ctx, chefIdentity(7, 3), input)

	require.NoError(t, err)
	assert.Equal(t, uint(21), item.ID)
	assert.Equal(t, 40, item.Quantity)
}

func TestInventoryService_CreateInventoryItem_CashierDenied(t *testing.T) {
	fx := createTestInventoryService(t)

	input := &usecase.InventoryItemInput{Name: "Beef", Quantity: 1, Unit: "kg", BranchID: 3}

	_, err := fx.service.CreateInventoryItem(context.Background(), cashierIdentity(7, 3), input)

	requireErrorCode(t, err, "ROLE_NOT_PERMITTED")
}

func TestInventoryService_ListInventory_ScopeWins(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		ListInventoryItems(ctx, uint(3)).
		Return([]*entity.InventoryItem{{ID: 21, BranchID: 3}}, nil)

	items, err := fx.service.ListInventory(ctx, chefIdentity(7, 3), nil)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestInventoryService_ListInventory_ManagementMustPickABranch(t *testing.T) {
	fx := createTestInventoryService(t)

	_, err := fx.service.ListInventory(context.Background(), adminIdentity(), nil)

	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestInventoryService_AdjustQuantity_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, uint(21)).
		Return(&entity.InventoryItem{ID: 21, Quantity: 40, Threshold: 10, BranchID: 3}, nil)
	fx.inventoryRepo.EXPECT().
		AdjustQuantity(ctx, uint(21), -5).
		Return(&entity.InventoryItem{ID: 21, Quantity: 35, Threshold: 10, BranchID: 3}, nil)

	updated, err := fx.service.AdjustQuantity(ctx, chefIdentity(7, 3), 21, -5)

	require.NoError(t, err)
	assert.Equal(t, 35, updated.Quantity)
}

func TestInventoryService_AdjustQuantity_InsufficientStock(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, uint(21)).
		Return(&entity.InventoryItem{ID: 21, Quantity: 4, Threshold: 10, BranchID: 3}, nil)
	fx.inventoryRepo.EXPECT().
		AdjustQuantity(ctx, uint(21), -10).
		Return(nil, repository.ErrInsufficientStock)

	_, err := fx.service.AdjustQuantity(ctx, chefIdentity(7, 3), 21, -10)

	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestInventoryService_AdjustQuantity_OtherBranchDenied(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, uint(21)).
		Return(&entity.InventoryItem{ID: 21, Quantity: 40, BranchID: 4}, nil)

	_, err := fx.service.AdjustQuantity(ctx, chefIdentity(7, 3), 21, -5)

	assert.ErrorIs(t, err, domainerrors.ErrBranchMismatch)
}

func TestInventoryService_AdjustQuantity_ItemNotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.inventoryRepo.EXPECT().
		FindInventoryItemByID(ctx, uint(99)).
		Return(nil, repository.ErrInventoryItemNotFound)

	_, err := fx.service.AdjustQuantity(ctx, chefIdentity(7, 3), 99, 1)

	requireErrorCode(t, err, "INVENTORY_ITEM_NOT_FOUND")
}
