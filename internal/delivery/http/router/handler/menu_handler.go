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

// MenuHandler holds dependencies for menu catalog handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateMenuItem handles the menu item creation request.
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	var input *usecase.MenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, err := h.uc.CreateMenuItem(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created successfully")
}

// ListMenu handles the public menu listing request for one branch.
func (h *MenuHandler) ListMenu(c echo.Context) error {
	branchID, err := optionalUintQuery(c, "branch_id")
	if err != nil || branchID == nil {
		return response.BadRequest(c, "INVALID_INPUT", "branch_id query parameter is required")
	}

	items, err := h.uc.ListMenu(c.Request().Context(), *branchID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Menu retrieved successfully")
}

// UpdateMenuItem handles the menu item update request.
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid menu item id")
	}

	var input *usecase.MenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, err := h.uc.UpdateMenuItem(c.Request().Context(), identity, itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated successfully")
}

// availabilityInput is the body of an availability toggle request.
type availabilityInput struct {
	IsAvailable bool `json:"is_available"`
}

// SetAvailability handles the menu item availability toggle request.
func (h *MenuHandler) SetAvailability(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid menu item id")
	}

	var input *availabilityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	if err := h.uc.SetAvailability(c.Request().Context(), identity, itemID, input.IsAvailable); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item availability updated successfully")
}

// DeleteMenuItem handles the menu item deletion request.
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid menu item id")
	}

	if err := h.uc.DeleteMenuItem(c.Request().Context(), identity, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted successfully")
}
