package usecase

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// CreatePaymentInput carries a settlement request for an order.
type CreatePaymentInput struct {
	OrderID uint            `json:"order_id" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	Method  string          `json:"method" validate:"required,oneof=cash card online"`
}

// PaymentUsecase defines payment operations exposed to transports.
type PaymentUsecase interface {
	// CreatePayment settles an order. It fails on a duplicate payment, an
	// amount that deviates from the order total by more than 0.01, or when
	// the identity may not pay for the targeted order.
	CreatePayment(ctx context.Context, identity policy.Identity, input *CreatePaymentInput) (*entity.Payment, error)

	// ListPayments retrieves payments visible to the identity.
	ListPayments(ctx context.Context, identity policy.Identity, filter repository.PaymentFilter) ([]*entity.Payment, error)
}
