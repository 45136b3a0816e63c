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

// BranchHandler holds dependencies for branch management handlers.
type BranchHandler struct {
	uc     usecase.BranchUsecase
	logger *slog.Logger
}

// NewBranchHandler is the constructor for BranchHandler, injected by Fx.
func NewBranchHandler(uc usecase.BranchUsecase, logger *slog.Logger) *BranchHandler {
	return &BranchHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateBranch handles the branch creation request.
func (h *BranchHandler) CreateBranch(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	var input *usecase.BranchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	branch, err := h.uc.CreateBranch(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, branch, "Branch created successfully")
}

// ListBranches handles the public branch listing request.
func (h *BranchHandler) ListBranches(c echo.Context) error {
	branches, err := h.uc.ListBranches(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, branches, "Branches retrieved successfully")
}

// UpdateBranch handles the branch update request.
func (h *BranchHandler) UpdateBranch(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	branchID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid branch id")
	}

	var input *usecase.BranchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	branch, err := h.uc.UpdateBranch(c.Request().Context(), identity, branchID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, branch, "Branch updated successfully")
}

// DeleteBranch handles the branch deletion request.
func (h *BranchHandler) DeleteBranch(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	branchID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid branch id")
	}

	if err := h.uc.DeleteBranch(c.Request().Context(), identity, branchID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Branch deleted successfully")
}
