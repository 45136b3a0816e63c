package postgres

import (
	"context"

	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/repository"
	"steakz/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order together with its items in one insert.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBranchNotFound.WrapMessage("order references an unknown branch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Propagate generated identifiers and timestamps back to the entity.
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.Items[i].OrderID
	}

	return nil
}

// FindOrderByID retrieves an order with its items and payment.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uint) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		First(&orderM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrders retrieves orders matching the filter, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment")

	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus conditionally moves an order from the expected status to
// the next one. The WHERE clause carries the expected status so a concurrent
// transition makes the update match zero rows instead of clobbering it.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uint, expected, next entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, expected.String()).
		Update("status", next.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		// Either the order is gone or its status moved under us.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrOrderStatusConflict
	}

	return nil
}

// DeleteOrder removes an order; its items go with it by cascade.
func (repo *orderRepository) DeleteOrder(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:         itemM.ID,
			OrderID:    itemM.OrderID,
			MenuItemID: itemM.MenuItemID,
			Quantity:   itemM.Quantity,
			UnitPrice:  itemM.UnitPrice,
			Subtotal:   itemM.Subtotal,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		Status:          entity.OrderStatus(data.Status),
		TotalAmount:     data.TotalAmount,
		CustomerID:      data.CustomerID,
		BranchID:        data.BranchID,
		DeliveryAddress: data.DeliveryAddress,
		Items:           items,
		Payment:         toPaymentDomain(data.Payment),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		Status:          data.Status.String(),
		TotalAmount:     data.TotalAmount,
		CustomerID:      data.CustomerID,
		BranchID:        data.BranchID,
		DeliveryAddress: data.DeliveryAddress,
		Items:           items,
	}
}
