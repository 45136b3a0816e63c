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
	"steakz/internal/domain/service"
	"steakz/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	menuRepo   repository.MenuItemRepository
	branchRepo repository.BranchRepository
	receiptSvc service.ReceiptService
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	MenuRepo   repository.MenuItemRepository
	BranchRepo repository.BranchRepository
	ReceiptSvc service.ReceiptService
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		menuRepo:   params.MenuRepo,
		branchRepo: params.BranchRepo,
		receiptSvc: params.ReceiptSvc,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder resolves pricing and the fulfilling branch, then persists the
// order atomically with its items.
func (srv *orderService) CreateOrder(ctx context.Context, identity policy.Identity, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	scope, err := policy.CanPerform(identity, policy.ActionCreateOrder, policy.Target{
		BranchID:   input.BranchID,
		CustomerID: input.CustomerID,
	})
	if err != nil {
		return nil, err
	}

	customerID := identity.UserID
	if input.CustomerID != nil && identity.Role.IsStaff() {
		customerID = *input.CustomerID
	}

	branchID, err := srv.resolveBranch(ctx, scope, input)
	if err != nil {
		return nil, err
	}

	items, total, err := srv.priceItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		Status:          entity.OrderStatusPending,
		TotalAmount:     total,
		CustomerID:      customerID,
		BranchID:        branchID,
		DeliveryAddress: input.DeliveryAddress,
		Items:           items,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.Uint64("orderID", uint64(order.ID)),
		slog.Uint64("branchID", uint64(order.BranchID)),
		slog.String("total", order.TotalAmount.StringFixed(2)),
	)

	return order, nil
}

// resolveBranch determines the fulfilling branch: the policy scope wins for
// branch-bound staff, then an explicit branch, then address similarity.
func (srv *orderService) resolveBranch(ctx context.Context, scope policy.ScopeFilter, input *usecase.CreateOrderInput) (uint, error) {
	explicit := input.BranchID
	if scope.BranchID != nil {
		// Branch-scoped staff always order against their own branch.
		explicit = scope.BranchID
	}

	if explicit != nil {
		branch, err := srv.branchRepo.FindBranchByID(ctx, *explicit)
		if err != nil {
			if errors.Is(err, repository.ErrBranchNotFound) {
				return 0, domainerrors.ErrBranchNotFound
			}

			return 0, errors.Wrap(err, "failed to find branch")
		}

		return branch.ID, nil
	}

	if input.DeliveryAddress != "" {
		branches, err := srv.branchRepo.ListBranches(ctx)
		if err != nil {
			return 0, errors.Wrap(err, "failed to list branches")
		}

		if branch := resolveBranchByAddress(branches, input.DeliveryAddress); branch != nil {
			return branch.ID, nil
		}

		return 0, domainerrors.ErrMissingBranch.WithDetails("no branches available to match the delivery address")
	}

	return 0, domainerrors.ErrMissingBranch
}

// priceItems looks up every requested item and pins its current catalog
// price. Any item-level failure aborts the whole resolution.
func (srv *orderService) priceItems(ctx context.Context, inputs []usecase.OrderItemInput) ([]entity.OrderItem, decimal.Decimal, error) {
	items := make([]entity.OrderItem, 0, len(inputs))
	total := decimal.Zero

	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, decimal.Zero, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("quantity for menu item %d must be positive", in.MenuItemID))
		}

		menuItem, err := srv.menuRepo.FindMenuItemByID(ctx, in.MenuItemID)
		if err != nil {
			if errors.Is(err, repository.ErrMenuItemNotFound) {
				return nil, decimal.Zero, domainerrors.ErrItemNotFound.WithDetails(
					fmt.Sprintf("menu item %d does not exist", in.MenuItemID))
			}

			return nil, decimal.Zero, errors.Wrap(err, "failed to find menu item")
		}

		if !menuItem.IsAvailable {
			return nil, decimal.Zero, domainerrors.ErrItemUnavailable.WithDetails(
				fmt.Sprintf("menu item %q is currently unavailable", menuItem.Name))
		}

		unitPrice := menuItem.Price.Round(2)
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2)
		items = append(items, entity.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   in.Quantity,
			UnitPrice:  unitPrice,
			Subtotal:   subtotal,
		})
		total = total.Add(subtotal)
	}

	return items, total.Round(2), nil
}

// GetOrder retrieves a single order the identity is allowed to see.
func (srv *orderService) GetOrder(ctx context.Context, identity policy.Identity, orderID uint) (*entity.Order, error) {
	return srv.loadVisibleOrder(ctx, identity, orderID)
}

// loadVisibleOrder loads an order and enforces visibility: customers only see
// their own orders (reported as not found to avoid leaking existence), staff
// are checked against their branch scope.
func (srv *orderService) loadVisibleOrder(ctx context.Context, identity policy.Identity, orderID uint) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if identity.Role == entity.RoleCustomer {
		if order.CustomerID != identity.UserID {
			return nil, domainerrors.ErrOrderNotFound
		}

		return order, nil
	}

	if _, err := policy.CanPerform(identity, policy.ActionViewOrders, policy.Target{BranchID: &order.BranchID}); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders retrieves orders visible to the identity.
func (srv *orderService) ListOrders(ctx context.Context, identity policy.Identity, filter repository.OrderFilter) ([]*entity.Order, error) {
	scope, err := policy.CanPerform(identity, policy.ActionViewOrders, policy.Target{BranchID: filter.BranchID})
	if err != nil {
		return nil, err
	}

	// The scope filter is authoritative; client filters only narrow further.
	if scope.BranchID != nil {
		filter.BranchID = scope.BranchID
	}
	if scope.CustomerID != nil {
		filter.CustomerID = scope.CustomerID
	}

	orders, err := srv.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// TransitionOrderStatus applies a status change, validating the role's
// permitted transition set and state-machine reachability against the same
// snapshot the conditional write uses.
func (srv *orderService) TransitionOrderStatus(ctx context.Context, identity policy.Identity, orderID uint, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", next))
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if _, err := policy.CanPerform(identity, policy.ActionTransitionOrder, policy.Target{BranchID: &order.BranchID}); err != nil {
		return nil, err
	}

	// Reachability is checked before the role's transition set: an impossible
	// move is an invalid transition no matter who requests it.
	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot move from %s to %s", order.Status, next))
	}

	if !policy.RoleMayRequest(identity.Role, next) {
		return nil, domainerrors.ErrRoleNotPermitted.WithDetails(
			fmt.Sprintf("role %s may not request status %s", identity.Role, next))
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().UpdateOrderStatus(ctx, order.ID, order.Status, next); err != nil {
			return err
		}

		// Cancelling a paid order refunds the payment in the same transaction.
		if next == entity.OrderStatusCancelled && order.Payment != nil && order.Payment.Status != entity.PaymentStatusRefunded {
			return repoFactory.PaymentRepo().UpdatePaymentStatus(ctx, order.Payment.ID, entity.PaymentStatusRefunded)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderStatusConflict) {
			return nil, domainerrors.ErrInvalidTransition.WithDetails("order status changed concurrently")
		}

		return nil, errors.Wrap(err, "failed to transition order status")
	}

	order.Status = next
	if next == entity.OrderStatusCancelled && order.Payment != nil {
		order.Payment.Status = entity.PaymentStatusRefunded
	}

	srv.log(ctx).Info("Order status changed",
		slog.Uint64("orderID", uint64(order.ID)),
		slog.String("status", next.String()),
	)

	return order, nil
}

// DeleteOrder removes an order, refunding an existing payment first.
func (srv *orderService) DeleteOrder(ctx context.Context, identity policy.Identity, orderID uint) error {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	if _, err := policy.CanPerform(identity, policy.ActionDeleteOrder, policy.Target{BranchID: &order.BranchID}); err != nil {
		return err
	}

	if order.Status == entity.OrderStatusDelivered {
		return domainerrors.ErrCannotDeleteDelivered
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if order.Payment != nil && order.Payment.Status != entity.PaymentStatusRefunded {
			if err := repoFactory.PaymentRepo().UpdatePaymentStatus(ctx, order.Payment.ID, entity.PaymentStatusRefunded); err != nil {
				return err
			}
		}

		return repoFactory.OrderRepo().DeleteOrder(ctx, order.ID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.Uint64("orderID", uint64(order.ID)))

	return nil
}

// GetOrderReceipt renders the QR receipt of a paid order.
func (srv *orderService) GetOrderReceipt(ctx context.Context, identity policy.Identity, orderID uint) ([]byte, error) {
	order, err := srv.loadVisibleOrder(ctx, identity, orderID)
	if err != nil {
		return nil, err
	}

	if order.Payment == nil {
		return nil, domainerrors.ErrPaymentNotFound
	}

	receipt, err := srv.receiptSvc.GenerateReceiptQR(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR")
	}

	return receipt, nil
}
