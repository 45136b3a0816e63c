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

// StaffHandler holds dependencies for staff management handlers.
type StaffHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler, injected by Fx.
func NewStaffHandler(uc usecase.UserUsecase, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateStaff handles the staff account creation request.
func (h *StaffHandler) CreateStaff(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateStaffInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	staff, err := h.uc.CreateStaff(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, staff, "Staff account created successfully")
}

// ListStaff handles the staff listing request.
func (h *StaffHandler) ListStaff(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	branchID, err := optionalUintQuery(c, "branch_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid branch id")
	}

	staff, err := h.uc.ListStaff(c.Request().Context(), identity, branchID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, staff, "Staff retrieved successfully")
}
