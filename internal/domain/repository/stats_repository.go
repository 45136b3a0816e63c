package repository

import (
	"context"

	"steakz/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// StatsRepository defines read-only aggregation queries for dashboards.
type StatsRepository interface {
	// CountOrdersByStatus returns order counts grouped by status,
	// optionally restricted to one branch.
	CountOrdersByStatus(ctx context.Context, branchID *uint) (map[entity.OrderStatus]int64, error)

	// SumCompletedRevenue returns the sum of completed payment amounts,
	// optionally restricted to one branch.
	SumCompletedRevenue(ctx context.Context, branchID *uint) (decimal.Decimal, error)

	// CountLowStockItems returns the number of inventory items at or below
	// their threshold, optionally restricted to one branch.
	CountLowStockItems(ctx context.Context, branchID *uint) (int64, error)
}
