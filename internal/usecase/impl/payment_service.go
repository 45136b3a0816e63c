package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "steakz/internal/delivery/context"
	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"
	"steakz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// amountTolerance is the maximum allowed deviation between a payment amount
// and the order total.
var amountTolerance = decimal.NewFromFloat(0.01)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePayment settles an order. Settlement is immediate: there is no
// external gateway, so a successful payment is created as COMPLETED.
func (srv *paymentService) CreatePayment(ctx context.Context, identity policy.Identity, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	method := entity.PaymentMethod(input.Method)
	if !method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown payment method %q", input.Method))
	}

	scope, err := policy.CanPerform(identity, policy.ActionCreatePayment, policy.Target{})
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if scope.CustomerID != nil && *scope.CustomerID != order.CustomerID {
		return nil, domainerrors.ErrPaymentUnauthorized
	}
	if scope.BranchID != nil && *scope.BranchID != order.BranchID {
		return nil, domainerrors.ErrPaymentUnauthorized.WithDetails("order belongs to another branch")
	}

	if order.Payment != nil {
		return nil, domainerrors.ErrDuplicatePayment
	}

	if input.Amount.Sub(order.TotalAmount).Abs().GreaterThan(amountTolerance) {
		return nil, domainerrors.ErrAmountMismatch.WithDetails(
			fmt.Sprintf("order total is %s, payment amount is %s",
				order.TotalAmount.StringFixed(2), input.Amount.StringFixed(2)))
	}

	payment := &entity.Payment{
		OrderID:   order.ID,
		Amount:    input.Amount.Round(2),
		Method:    method,
		Status:    entity.PaymentStatusCompleted,
		Reference: uuid.NewString(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PaymentRepo().CreatePayment(ctx, payment)
	})
	if err != nil {
		// The unique order constraint closes the read-then-create race.
		if errors.Is(err, repository.ErrDuplicatePayment) {
			return nil, domainerrors.ErrDuplicatePayment
		}

		return nil, errors.Wrap(err, "failed to create payment")
	}

	srv.log(ctx).Info("Payment completed",
		slog.Uint64("orderID", uint64(order.ID)),
		slog.String("amount", payment.Amount.StringFixed(2)),
		slog.String("method", string(payment.Method)),
	)

	return payment, nil
}

// ListPayments retrieves payments visible to the identity.
func (srv *paymentService) ListPayments(ctx context.Context, identity policy.Identity, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	scope, err := policy.CanPerform(identity, policy.ActionViewPayments, policy.Target{BranchID: filter.BranchID})
	if err != nil {
		return nil, err
	}

	if scope.BranchID != nil {
		filter.BranchID = scope.BranchID
	}
	if scope.CustomerID != nil {
		filter.CustomerID = scope.CustomerID
	}

	payments, err := srv.paymentRepo.ListPayments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
