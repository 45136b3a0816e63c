package usecase

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/policy"

	"github.com/shopspring/decimal"
)

// DashboardStats is the aggregate snapshot served to management dashboards.
type DashboardStats struct {
	OrdersByStatus map[entity.OrderStatus]int64 `json:"orders_by_status"`
	Revenue        decimal.Decimal              `json:"revenue"`
	LowStockItems  int64                        `json:"low_stock_items"`
}

// DashboardUsecase defines read-only statistical queries over the store.
type DashboardUsecase interface {
	// GetStats aggregates order counts, completed revenue and low-stock
	// counts, scoped to the identity's visibility. Branch managers see their
	// own branch; management may pass an optional narrowing branch filter.
	GetStats(ctx context.Context, identity policy.Identity, branchID *uint) (*DashboardStats, error)
}
