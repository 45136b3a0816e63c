package handler

import (
	"log/slog"
	"net/http"

	"steakz/internal/delivery/http/middleware"
	"steakz/internal/delivery/http/response"
	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/repository"
	"steakz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOrder handles the order creation request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// GetOrder handles the single order retrieval request.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), identity, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders handles the order listing request. Optional branch_id,
// customer_id and status query parameters narrow the listing; the policy
// scope filter decides what is actually visible.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	filter, err := orderFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order filter")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), identity, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// transitionInput is the body of a status transition request.
type transitionInput struct {
	Status string `json:"status" validate:"required"`
}

// TransitionStatus handles the order status transition request.
func (h *OrderHandler) TransitionStatus(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input *transitionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	next, ok := entity.OrderStatusFromString(input.Status)
	if !ok {
		return domainerrors.ErrInvalidTransition.WrapMessage("unknown order status " + input.Status)
	}

	order, err := h.uc.TransitionOrderStatus(c.Request().Context(), identity, orderID, next)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// DeleteOrder handles the order deletion request.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), identity, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// GetReceipt handles the receipt rendering request and returns a PNG image.
func (h *OrderHandler) GetReceipt(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	png, err := h.uc.GetOrderReceipt(c.Request().Context(), identity, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func orderFilterFromQuery(c echo.Context) (repository.OrderFilter, error) {
	var filter repository.OrderFilter

	branchID, err := optionalUintQuery(c, "branch_id")
	if err != nil {
		return filter, err
	}
	filter.BranchID = branchID

	customerID, err := optionalUintQuery(c, "customer_id")
	if err != nil {
		return filter, err
	}
	filter.CustomerID = customerID

	if raw := c.QueryParam("status"); raw != "" {
		status, ok := entity.OrderStatusFromString(raw)
		if !ok {
			return filter, domainerrors.ErrInvalidTransition.WrapMessage("unknown order status " + raw)
		}
		filter.Status = &status
	}

	return filter, nil
}
