package postgres

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/repository"
	"steakz/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// statsRepository implements the domain.StatsRepository interface using GORM.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// CountOrdersByStatus returns order counts grouped by status.
func (repo *statsRepository) CountOrdersByStatus(ctx context.Context, branchID *uint) (map[entity.OrderStatus]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}

	var rows []statusCount
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// SumCompletedRevenue returns the sum of completed payment amounts.
func (repo *statsRepository) SumCompletedRevenue(ctx context.Context, branchID *uint) (decimal.Decimal, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("COALESCE(SUM(payments.amount), 0)").
		Where("payments.status = ?", entity.PaymentStatusCompleted.String())
	if branchID != nil {
		query = query.
			Joins("JOIN orders ON orders.id = payments.order_id").
			Where("orders.branch_id = ?", *branchID)
	}

	var revenue decimal.Decimal
	if err := query.Scan(&revenue).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum completed revenue")
	}

	return revenue, nil
}

// CountLowStockItems returns the number of inventory items at or below their threshold.
func (repo *statsRepository) CountLowStockItems(ctx context.Context, branchID *uint) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.InventoryItemModel{}).
		Where("quantity <= threshold")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count low stock items")
	}

	return count, nil
}
