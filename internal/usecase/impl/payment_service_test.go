package impl

import (
	"context"
	"testing"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/repository"
	mockRepo "steakz/internal/mocks/repository"
	"steakz/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	paymentRepo *mockRepo.MockPaymentRepository
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		PaymentRepo: paymentRepo,
		Logger:      newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:     service,
		txManager:   txManager,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

func unpaidOrder() *entity.Order {
	return &entity.Order{
		ID:          5,
		Status:      entity.OrderStatusPending,
		TotalAmount: decimal.NewFromFloat(53.25),
		CustomerID:  42,
		BranchID:    1,
	}
}

func TestPaymentService_CreatePayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.CreatePaymentInput{
		OrderID: 5,
		Amount:  decimal.NewFromFloat(53.25),
		Method:  "card",
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(unpaidOrder(), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)
			mockPaymentRepo.EXPECT().
				CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
				Run(func(ctx context.Context, payment *entity.Payment) {
					payment.ID = 9
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	payment, err := fx.service.CreatePayment(ctx, customerIdentity(42), input)

	require.NoError(t, err)
	assert.Equal(t, uint(9), payment.ID)
	assert.Equal(t, uint(5), payment.OrderID)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, entity.PaymentMethodCard, payment.Method)
	assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(53.25)))

	// The settlement reference must be a well-formed UUID for receipts.
	_, err = uuid.Parse(payment.Reference)
	assert.NoError(t, err)
}

func TestPaymentService_CreatePayment_UnknownMethod(t *testing.T) {
	fx := createTestPaymentService(t)

	input := &usecase.CreatePaymentInput{OrderID: 5, Amount: decimal.NewFromFloat(10), Method: "cheque"}

	_, err := fx.service.CreatePayment(context.Background(), customerIdentity(42), input)

	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPaymentService_CreatePayment_ForeignOrderIsUnauthorized(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.CreatePaymentInput{OrderID: 5, Amount: decimal.NewFromFloat(53.25), Method: "cash"}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(unpaidOrder(), nil)

	_, err := fx.service.CreatePayment(ctx, customerIdentity(99), input)

	requireErrorCode(t, err, "UNAUTHORIZED")
}

func TestPaymentService_CreatePayment_CashierOtherBranchIsUnauthorized(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.CreatePaymentInput{OrderID: 5, Amount: decimal.NewFromFloat(53.25), Method: "cash"}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(unpaidOrder(), nil)

	_, err := fx.service.CreatePayment(ctx, cashierIdentity(7, 2), input)

	requireErrorCode(t, err, "UNAUTHORIZED")
}

func TestPaymentService_CreatePayment_DuplicatePayment(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := unpaidOrder()
	order.Payment = &entity.Payment{ID: 9, OrderID: 5, Status: entity.PaymentStatusCompleted}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(order, nil)

	input := &usecase.CreatePaymentInput{OrderID: 5, Amount: decimal.NewFromFloat(53.25), Method: "cash"}
	_, err := fx.service.CreatePayment(ctx, customerIdentity(42), input)

	requireErrorCode(t, err, "DUPLICATE_PAYMENT")
}

func TestPaymentService_CreatePayment_DuplicateRaceClosedByStore(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(unpaidOrder(), nil)

	// Another request settled the order between the read and the insert.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicatePayment)

	input := &usecase.CreatePaymentInput{OrderID: 5, Amount: decimal.NewFromFloat(53.25), Method: "cash"}
	_, err := fx.service.CreatePayment(ctx, customerIdentity(42), input)

	requireErrorCode(t, err, "DUPLICATE_PAYMENT")
}

func TestPaymentService_CreatePayment_AmountTolerance(t *testing.T) {
	cases := []struct {
		name    string
		amount  decimal.Decimal
		allowed bool
	}{
		{"exact amount", decimal.NewFromFloat(53.25), true},
		{"one cent under", decimal.NewFromFloat(53.24), true},
		{"one cent over", decimal.NewFromFloat(53.26), true},
		{"two cents under", decimal.NewFromFloat(53.23), false},
		{"two cents over", decimal.NewFromFloat(53.27), false},
		{"wildly off", decimal.NewFromFloat(10.00), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestPaymentService(t)

			ctx := context.Background()
			fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(unpaidOrder(), nil)

			if tc.allowed {
				fx.txManager.EXPECT().
					Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
					Return(nil)
			}

			input := &usecase.CreatePaymentInput{OrderID: 5, Amount: tc.amount, Method: "cash"}
			_, err := fx.service.CreatePayment(ctx, customerIdentity(42), input)

			if tc.allowed {
				assert.NoError(t, err)
			} else {
				requireErrorCode(t, err, "AMOUNT_MISMATCH")
			}
		})
	}
}

func TestPaymentService_CreatePayment_OrderNotFound(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().FindOrderByID(ctx, uint(5)).Return(nil, repository.ErrOrderNotFound)

	input := &usecase.CreatePaymentInput{OrderID: 5, Amount: decimal.NewFromFloat(10), Method: "cash"}
	_, err := fx.service.CreatePayment(ctx, customerIdentity(42), input)

	requireErrorCode(t, err, "ORDER_NOT_FOUND")
}

func TestPaymentService_ListPayments_ScopeNarrowsFilter(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.paymentRepo.EXPECT().
		ListPayments(ctx, mock.MatchedBy(func(filter repository.PaymentFilter) bool {
			return filter.BranchID != nil && *filter.BranchID == 3
		})).
		Return([]*entity.Payment{{ID: 9, OrderID: 5}}, nil)

	payments, err := fx.service.ListPayments(ctx, cashierIdentity(7, 3), repository.PaymentFilter{})

	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestPaymentService_ListPayments_ChefIsDenied(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.ListPayments(context.Background(), chefIdentity(7, 1), repository.PaymentFilter{})

	requireErrorCode(t, err, "ROLE_NOT_PERMITTED")
}
