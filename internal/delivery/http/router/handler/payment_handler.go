package handler

import (
	"log/slog"
	"net/http"

	"steakz/internal/delivery/http/middleware"
	"steakz/internal/delivery/http/response"
	"steakz/internal/domain/entity"
	"steakz/internal/domain/repository"
	"steakz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePayment handles the order settlement request.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	var input *usecase.CreatePaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	payment, err := h.uc.CreatePayment(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded successfully")
}

// ListPayments handles the payment listing request.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return err
	}

	var filter repository.PaymentFilter

	branchID, err := optionalUintQuery(c, "branch_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment filter")
	}
	filter.BranchID = branchID

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.PaymentStatus(raw)
		filter.Status = &status
	}

	payments, err := h.uc.ListPayments(c.Request().Context(), identity, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}
