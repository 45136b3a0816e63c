package impl

import (
	"context"
	"testing"

	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"
	mockRepo "steakz/internal/mocks/repository"
	mockSvc "steakz/internal/mocks/service"
	"steakz/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service    usecase.OrderUsecase
	txManager  *mockRepo.MockTransactionManager
	orderRepo  *mockRepo.MockOrderRepository
	menuRepo   *mockRepo.MockMenuItemRepository
	branchRepo *mockRepo.MockBranchRepository
	receiptSvc *mockSvc.MockReceiptService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	menuRepo := mockRepo.NewMockMenuItemRepository(t)
	branchRepo := mockRepo.NewMockBranchRepository(t)
	receiptSvc := mockSvc.NewMockReceiptService(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:  txManager,
		OrderRepo:  orderRepo,
		MenuRepo:   menuRepo,
		BranchRepo: branchRepo,
		ReceiptSvc: receiptSvc,
		Logger:     newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:    service,
		txManager:  txManager,
		orderRepo:  orderRepo,
		menuRepo:   menuRepo,
		branchRepo: branchRepo,
		receiptSvc: receiptSvc,
	}
}

func customerIdentity(userID uint) policy.Identity {
	return policy.Identity{UserID: userID, Role: entity.RoleCustomer}
}

func cashierIdentity(userID, branchID uint) policy.Identity {
	return policy.Identity{UserID: userID, Role: entity.RoleCashier, BranchID: &branchID}
}

func chefIdentity(userID, branchID uint) policy.Identity {
	return policy.Identity{UserID: userID, Role: entity.RoleChef, BranchID: &branchID}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{MenuItemID: 10, Quantity: 2},
			{MenuItemID: 11, Quantity: 1},
		},
		BranchID:        uintPtr(1),
		DeliveryAddress: "12 Main Street, Springfield",
	}

	fx.branchRepo.EXPECT().
		FindBranchByID(ctx, uint(1)).
		Return(&entity.Branch{ID: 1, Name: "Downtown"}, nil)

	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(10)).
		Return(&entity.MenuItem{ID: 10, Name: "Ribeye", Price: decimal.NewFromFloat(24.50), IsAvailable: true, BranchID: 1}, nil)
	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(11)).
		Return(&entity.MenuItem{ID: 11, Name: "Fries", Price: decimal.NewFromFloat(4.25), IsAvailable: true, BranchID: 1}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = 77
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, customerIdentity(42), input)

	require.NoError(t, err)
	assert.Equal(t, uint(77), order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, uint(42), order.CustomerID)
	assert.Equal(t, uint(1), order.BranchID)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.NewFromFloat(49.00)), "got %s", order.Items[0].Subtotal)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(53.25)), "got %s", order.TotalAmount)
}

func TestOrderService_CreateOrder_EmptyOrder(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), customerIdentity(42), &usecase.CreateOrderInput{})

	requireErrorCode(t, err, "EMPTY_ORDER")
}

func TestOrderService_CreateOrder_MissingBranch(t *testing.T) {
	fx := createTestOrderService(t)

	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{MenuItemID: 10, Quantity: 1}},
	}

	_, err := fx.service.CreateOrder(context.Background(), customerIdentity(42), input)

	requireErrorCode(t, err, "MISSING_BRANCH")
}

func TestOrderService_CreateOrder_ResolvesBranchFromAddress(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{MenuItemID: 10, Quantity: 1}},
		DeliveryAddress: "88 River Road, Springfield, Apt 4",
	}

	fx.branchRepo.EXPECT().ListBranches(ctx).Return(newTestBranches(), nil)
	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(10)).
		Return(&entity.MenuItem{ID: 10, Price: decimal.NewFromFloat(9.99), IsAvailable: true, BranchID: 2}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, customerIdentity(42), input)

	require.NoError(t, err)
	assert.Equal(t, uint(2), order.BranchID)
}

func TestOrderService_CreateOrder_UnknownBranch(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items:    []usecase.OrderItemInput{{MenuItemID: 10, Quantity: 1}},
		BranchID: uintPtr(999),
	}

	fx.branchRepo.EXPECT().
		FindBranchByID(ctx, uint(999)).
		Return(nil, repository.ErrBranchNotFound)

	_, err := fx.service.CreateOrder(ctx, customerIdentity(42), input)

	requireErrorCode(t, err, "BRANCH_NOT_FOUND")
}

func TestOrderService_CreateOrder_ItemNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items:    []usecase.OrderItemInput{{MenuItemID: 10, Quantity: 1}},
		BranchID: uintPtr(1),
	}

	fx.branchRepo.EXPECT().FindBranchByID(ctx, uint(1)).Return(&entity.Branch{ID: 1}, nil)
	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(10)).
		Return(nil, repository.ErrMenuItemNotFound)

	_, err := fx.service.CreateOrder(ctx, customerIdentity(42), input)

	requireErrorCode(t, err, "ITEM_NOT_FOUND")
}

func TestOrderService_CreateOrder_ItemUnavailable(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items:    []usecase.OrderItemInput{{MenuItemID: 10, Quantity: 1}},
		BranchID: uintPtr(1),
	}

	fx.branchRepo.EXPECT().FindBranchByID(ctx, uint(1)).Return(&entity.Branch{ID: 1}, nil)
	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(10)).
		Return(&entity.MenuItem{ID: 10, Name: "Ribeye", Price: decimal.NewFromFloat(24.50), IsAvailable: false}, nil)

	_, err := fx.service.CreateOrder(ctx, customerIdentity(42), input)

	requireErrorCode(t, err, "ITEM_UNAVAILABLE")
}

func TestOrderService_CreateOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items:    []usecase.OrderItemInput{{MenuItemID: 10, Quantity: 0}},
		BranchID: uintPtr(1),
	}

	fx.branchRepo.EXPECT().FindBranchByID(ctx, uint(1)).Return(&entity.Branch{ID: 1}, nil)

	_, err := fx.service.CreateOrder(ctx, customerIdentity(42), input)

	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_CreateOrder_CashierDefaultsToOwnBranch(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items:      []usecase.OrderItemInput{{MenuItemID: 10, Quantity: 1}},
		CustomerID: uintPtr(42),
	}

	fx.branchRepo.EXPECT().FindBranchByID(ctx, uint(3)).Return(&entity.Branch{ID: 3}, nil)
	fx.menuRepo.EXPECT().
		FindMenuItemByID(ctx, uint(10)).
		Return(&entity.MenuItem{ID: 10, Price: decimal.NewFromFloat(9.99), IsAvailable: true, BranchID: 3}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, cashierIdentity(7, 3), input)

	require.NoError(t, err)
	assert.Equal(t, uint(3), order.BranchID)
	assert.Equal(t, uint(42), order.CustomerID)
}

func TestOrderService_CreateOrder_CashierOtherBranchMismatch(t *testing.T) {
	fx := createTestOrderService(t)

	input := &usecase.CreateOrderInput{
		Items:    []usecase.OrderItemInput{{MenuItemID: 10, Quantity: 1}},
		BranchID: uintPtr(1),
	}

	_, err := fx.service.CreateOrder(context.Background(), cashierIdentity(7, 3), input)

	assert.ErrorIs(t, err, domainerrors.ErrBranchMismatch)
}

func TestOrderService_GetOrder_CustomerCannotSeeForeignOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, CustomerID: 99, BranchID: 1}, nil)

	// Existence must not leak: a foreign order reads as not found.
	_, err := fx.service.GetOrder(ctx, customerIdentity(42), 5)

	requireErrorCode(t, err, "ORDER_NOT_FOUND")
}

func TestOrderService_GetOrder_StaffBranchScope(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, CustomerID: 99, BranchID: 1}, nil).
		Twice()

	_, err := fx.service.GetOrder(ctx, cashierIdentity(7, 2), 5)
	assert.ErrorIs(t, err, domainerrors.ErrBranchMismatch)

	order, err := fx.service.GetOrder(ctx, cashierIdentity(7, 1), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), order.ID)
}

func TestOrderService_ListOrders_ScopeOverridesClientFilter(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.CustomerID != nil && *filter.CustomerID == 42
		})).
		Return([]*entity.Order{{ID: 1, CustomerID: 42}}, nil)

	// The customer asks for someone else's orders; the scope filter wins.
	orders, err := fx.service.ListOrders(ctx, customerIdentity(42), repository.OrderFilter{CustomerID: uintPtr(99)})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, uint(42), orders[0].CustomerID)
}

func TestOrderService_TransitionOrderStatus_ChefStartsPreparing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, Status: entity.OrderStatusPending, BranchID: 1}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				UpdateOrderStatus(ctx, uint(5), entity.OrderStatusPending, entity.OrderStatusPreparing).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.TransitionOrderStatus(ctx, chefIdentity(7, 1), 5, entity.OrderStatusPreparing)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)
}

func TestOrderService_TransitionOrderStatus_CounterOrderSkipsKitchen(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, Status: entity.OrderStatusPending, BranchID: 1}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				UpdateOrderStatus(ctx, uint(5), entity.OrderStatusPending, entity.OrderStatusDelivered).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.TransitionOrderStatus(ctx, cashierIdentity(7, 1), 5, entity.OrderStatusDelivered)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
}

func TestOrderService_TransitionOrderStatus_RoleMayNotRequestStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, Status: entity.OrderStatusReady, BranchID: 1}, nil)

	_, err := fx.service.TransitionOrderStatus(ctx, chefIdentity(7, 1), 5, entity.OrderStatusDelivered)

	requireErrorCode(t, err, "ROLE_NOT_PERMITTED")
}

func TestOrderService_TransitionOrderStatus_UnreachableState(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, Status: entity.OrderStatusPending, BranchID: 1}, nil)

	_, err := fx.service.TransitionOrderStatus(ctx, chefIdentity(7, 1), 5, entity.OrderStatusReady)

	requireErrorCode(t, err, "INVALID_TRANSITION")
}

func TestOrderService_TransitionOrderStatus_UnreachableStateWinsOverRole(t *testing.T) {
	fx := createTestOrderService(t)

	// A chef may never request DELIVERED, but PREPARING cannot reach DELIVERED
	// either, and the impossible move is reported first.
	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, Status: entity.OrderStatusPreparing, BranchID: 1}, nil)

	_, err := fx.service.TransitionOrderStatus(ctx, chefIdentity(7, 1), 5, entity.OrderStatusDelivered)

	requireErrorCode(t, err, "INVALID_TRANSITION")
}

func TestOrderService_TransitionOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.TransitionOrderStatus(context.Background(), chefIdentity(7, 1), 5, entity.OrderStatus("BURNT"))

	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_TransitionOrderStatus_ConcurrentConflict(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, Status: entity.OrderStatusPending, BranchID: 1}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrOrderStatusConflict)

	_, err := fx.service.TransitionOrderStatus(ctx, chefIdentity(7, 1), 5, entity.OrderStatusPreparing)

	requireErrorCode(t, err, "INVALID_TRANSITION")
}

func TestOrderService_TransitionOrderStatus_CancelRefundsPayment(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:       5,
		Status:   entity.OrderStatusPending,
		BranchID: 1,
		Payment:  &entity.Payment{ID: 9, OrderID: 5, Status: entity.PaymentStatusCompleted},
	}
	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(order, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockOrderRepo.EXPECT().
				UpdateOrderStatus(ctx, uint(5), entity.OrderStatusPending, entity.OrderStatusCancelled).
				Return(nil)
			mockPaymentRepo.EXPECT().
				UpdatePaymentStatus(ctx, uint(9), entity.PaymentStatusRefunded).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	got, err := fx.service.TransitionOrderStatus(ctx, cashierIdentity(7, 1), 5, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, got.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, got.Payment.Status)
}

func TestOrderService_DeleteOrder_DeliveredIsProtected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, Status: entity.OrderStatusDelivered, BranchID: 1}, nil)

	identity := policy.Identity{UserID: 1, Role: entity.RoleAdmin}
	err := fx.service.DeleteOrder(ctx, identity, 5)

	requireErrorCode(t, err, "CANNOT_DELETE_DELIVERED")
}

func TestOrderService_DeleteOrder_RefundsBeforeDelete(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:       5,
		Status:   entity.OrderStatusPending,
		BranchID: 1,
		Payment:  &entity.Payment{ID: 9, OrderID: 5, Status: entity.PaymentStatusCompleted},
	}
	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(order, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockPaymentRepo.EXPECT().
				UpdatePaymentStatus(ctx, uint(9), entity.PaymentStatusRefunded).
				Return(nil)
			mockOrderRepo.EXPECT().DeleteOrder(ctx, uint(5)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	identity := policy.Identity{UserID: 1, Role: entity.RoleGeneralManager}
	err := fx.service.DeleteOrder(ctx, identity, 5)

	require.NoError(t, err)
}

func TestOrderService_GetOrderReceipt(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	unpaid := &entity.Order{ID: 5, CustomerID: 42, BranchID: 1}
	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(unpaid, nil)

	_, err := fx.service.GetOrderReceipt(ctx, customerIdentity(42), 5)
	requireErrorCode(t, err, "PAYMENT_NOT_FOUND")

	paid := &entity.Order{
		ID:         6,
		CustomerID: 42,
		BranchID:   1,
		Payment:    &entity.Payment{ID: 9, OrderID: 6, Status: entity.PaymentStatusCompleted},
	}
	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(6)).Return(paid, nil)
	fx.receiptSvc.EXPECT().GenerateReceiptQR(paid).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	receipt, err := fx.service.GetOrderReceipt(ctx, customerIdentity(42), 6)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt)
}
