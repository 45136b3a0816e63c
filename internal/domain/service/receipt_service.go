package service

import "steakz/internal/domain/entity"

// ReceiptService renders a scannable receipt for a settled order.
type ReceiptService interface {
	// GenerateReceiptQR encodes the order's payment reference and amount
	// into a QR code PNG.
	GenerateReceiptQR(order *entity.Order) ([]byte, error)
}
