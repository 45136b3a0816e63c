package impl

import (
	"context"
	"log/slog"

	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"
	"steakz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
	}
}

// GetStats aggregates order counts, completed revenue and low-stock counts,
// scoped to the identity's visibility.
func (srv *dashboardService) GetStats(ctx context.Context, identity policy.Identity, branchID *uint) (*usecase.DashboardStats, error) {
	scope, err := policy.CanPerform(identity, policy.ActionViewDashboard, policy.Target{BranchID: branchID})
	if err != nil {
		return nil, err
	}

	if scope.BranchID != nil {
		branchID = scope.BranchID
	}

	counts, err := srv.statsRepo.CountOrdersByStatus(ctx, branchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	revenue, err := srv.statsRepo.SumCompletedRevenue(ctx, branchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum completed revenue")
	}

	lowStock, err := srv.statsRepo.CountLowStockItems(ctx, branchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count low stock items")
	}

	return &usecase.DashboardStats{
		OrdersByStatus: counts,
		Revenue:        revenue,
		LowStockItems:  lowStock,
	}, nil
}
