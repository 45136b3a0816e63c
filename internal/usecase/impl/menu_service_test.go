package impl

import (
	"context"
	"testing"

	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"
	mockRepo "steakz/internal/mocks/repository"
	"steakz/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// menuServiceFixtures holds all test dependencies for menu service tests.
type menuServiceFixtures struct {
	service    usecase.MenuUsecase
	menuRepo   *mockRepo.MockMenuItemRepository
	branchRepo *mockRepo.MockBranchRepository
}

func createTestMenuService(t *testing.T) menuServiceFixtures {
	menuRepo := mockRepo.NewMockMenuItemRepository(t)
	branchRepo := mockRepo.NewMockBranchRepository(t)

	service := NewMenuService(MenuServiceParams{
		MenuRepo:   menuRepo,
		BranchRepo: branchRepo,
		Logger:     newDiscardLogger(),
	})

	return menuServiceFixtures{
		service:    service,
		menuRepo:   menuRepo,
		branchRepo: branchRepo,
	}
}

func branchManagerIdentity(userID, branchID uint) policy.Identity {
	return policy.Identity{UserID: userID, Role: entity.RoleBranchManager, BranchID: &branchID}
}

func TestMenuService_CreateMenuItem_Success(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	input := &usecase.MenuItemInput{
		Name:        "Ribeye",
		Price:       decimal.NewFromFloat(24.499),
		Category:    "grill",
		IsAvailable: true,
		BranchID:    3,
	}

	fx.branchRepo.EXPECT().FindBranchByID(ctx, uint(3)).Return(&entity.Branch{ID: 3}, nil)
	fx.menuRepo.EXPECT().
		CreateMenuItem(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Run(func(ctx context.Context, item *entity.MenuItem) {
			item.ID = 10
		}).
		Return(nil)

	item, err := fx.service.CreateMenuItem(ctx, branchManagerIdentity(7, 3), input)

	require.NoError(t, err)
	assert.Equal(t, uint(10), item.ID)
	// Prices are stored with two decimal places.
	assert.True(t, item.Price.Equal(decimal.NewFromFloat(24.50)), "got %s", item.Price)
}

func TestMenuService_CreateMenuItem_NegativePrice(t *testing.T) {
	fx := createTestMenuService(t)

	input := &usecase.MenuItemInput{
		Name:     "Ribeye",
		Price:    decimal.NewFromFloat(-1),
		Category: "grill",
		BranchID: 3,
	}

	_, err := fx.service.CreateMenuItem(context.Background(), branchManagerIdentity(7, 3), input)

	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestMenuService_CreateMenuItem_OtherBranchDenied(t *testing.T) {
	fx := createTestMenuService(t)

	input := &usecase.MenuItemInput{
		Name:     "Ribeye",
		Price:    decimal.NewFromFloat(24.50),
		Category: "grill",
		BranchID: 4,
	}

	_, err := fx.service.CreateMenuItem(context.Background(), branchManagerIdentity(7, 3), input)

	assert.ErrorIs(t, err, domainerrors.ErrBranchMismatch)
}

func TestMenuService_UpdateMenuItem_NotFound(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(10)).
		Return(nil, repository.ErrMenuItemNotFound)

	input := &usecase.MenuItemInput{Name: "Ribeye", Price: decimal.NewFromFloat(24.50), Category: "grill", BranchID: 3}
	_, err := fx.service.UpdateMenuItem(ctx, branchManagerIdentity(7, 3), 10, input)

	requireErrorCode(t, err, "ITEM_NOT_FOUND")
}

func TestMenuService_SetAvailability(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(10)).
		Return(&entity.MenuItem{ID: 10, BranchID: 3, IsAvailable: true}, nil)
	fx.menuRepo.EXPECT().SetAvailability(ctx, uint(10), false).Return(nil)

	err := fx.service.SetAvailability(ctx, branchManagerIdentity(7, 3), 10, false)

	require.NoError(t, err)
}

func TestMenuService_DeleteMenuItem_BranchScopeEnforced(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(10)).
		Return(&entity.MenuItem{ID: 10, BranchID: 4}, nil)

	err := fx.service.DeleteMenuItem(ctx, branchManagerIdentity(7, 3), 10)

	assert.ErrorIs(t, err, domainerrors.ErrBranchMismatch)
}

func TestMenuService_ListMenu(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	fx.menuRepo.EXPECT().
		ListMenuItems(ctx, uint(3)).
		Return([]*entity.MenuItem{{ID: 10, Name: "Ribeye", BranchID: 3}}, nil)

	items, err := fx.service.ListMenu(ctx, 3)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}
