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

// InventoryHandler holds dependencies for inventory handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateInventoryItem handles the inventory item creation request.
func (h *InventoryHandler) CreateInventoryItem(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	var input *usecase.InventoryItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory item input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, err := h.uc.CreateInventoryItem(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Inventory item created successfully")
}

// ListInventory handles the inventory listing request.
func (h *InventoryHandler) ListInventory(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	branchID, err := optionalUintQuery(c, "branch_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid branch id")
	}

	items, err := h.uc.ListInventory(c.Request().Context(), identity, branchID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Inventory retrieved successfully")
}

// adjustInput is the body of a stock adjustment request.
type adjustInput struct {
	Delta int `json:"delta" validate:"required"`
}

// AdjustQuantity handles the stock adjustment request.
func (h *InventoryHandler) AdjustQuantity(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid inventory item id")
	}

	var input *adjustInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, err := h.uc.AdjustQuantity(c.Request().Context(), identity, itemID, input.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Inventory adjusted successfully")
}
