package handler

import (
	"log/slog"
	"net/http"

	"steakz/internal/delivery/http/middleware"
	"steakz/internal/delivery/http/response"
	"steakz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for dashboard handlers.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStats handles the dashboard statistics request.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	branchID, err := optionalUintQuery(c, "branch_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid branch id")
	}

	stats, err := h.uc.GetStats(c.Request().Context(), identity, branchID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard statistics retrieved successfully")
}
