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

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// CreatePayment persists a new payment. The unique index on order_id turns a
// concurrent duplicate into ErrDuplicatePayment instead of a second row.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePayment
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindPaymentByOrder retrieves the payment of an order, if any.
func (repo *paymentRepository) FindPaymentByOrder(ctx context.Context, orderID uint) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by order")
	}

	return toPaymentDomain(&paymentM), nil
}

// ListPayments retrieves payments matching the filter, newest first.
// Branch and customer restrictions go through the owning order.
func (repo *paymentRepository) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	query := repo.db.WithContext(ctx).Model(&model.PaymentModel{})

	if filter.BranchID != nil || filter.CustomerID != nil {
		query = query.Joins("JOIN orders ON orders.id = payments.order_id")
		if filter.BranchID != nil {
			query = query.Where("orders.branch_id = ?", *filter.BranchID)
		}
		if filter.CustomerID != nil {
			query = query.Where("orders.customer_id = ?", *filter.CustomerID)
		}
	}
	if filter.Status != nil {
		query = query.Where("payments.status = ?", filter.Status.String())
	}

	var paymentModels []*model.PaymentModel
	if err := query.Order("payments.created_at DESC").Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// UpdatePaymentStatus updates the settlement status of a payment.
func (repo *paymentRepository) UpdatePaymentStatus(ctx context.Context, id uint, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Amount:    data.Amount,
		Method:    entity.PaymentMethod(data.Method),
		Status:    entity.PaymentStatus(data.Status),
		Reference: data.Reference,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel for persistence.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Amount:    data.Amount,
		Method:    string(data.Method),
		Status:    data.Status.String(),
		Reference: data.Reference,
	}
}
