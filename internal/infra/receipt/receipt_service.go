// Package receipt renders order receipts as scannable QR codes.
package receipt

import (
	"encoding/json"
	"fmt"

	"steakz/config"
	"steakz/internal/domain/entity"
	"steakz/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
)

type receiptService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the payload encoded into the receipt QR code
type ReceiptData struct {
	OrderID   uint   `json:"order_id"`
	Reference string `json:"reference,omitempty"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
}

// NewReceiptService creates a new receipt service instance
func NewReceiptService(cfg *config.Config) service.ReceiptService {
	size := defaultSize
	level := qrcode.Medium

	if cfg.Receipt != nil {
		if cfg.Receipt.Size > 0 {
			size = cfg.Receipt.Size
		}
		// Set error correction level
		switch cfg.Receipt.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
	}

	return &receiptService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReceiptQR encodes the order's settlement details into a QR code PNG.
func (s *receiptService) GenerateReceiptQR(order *entity.Order) ([]byte, error) {
	data := ReceiptData{
		OrderID: order.ID,
		Amount:  order.TotalAmount.StringFixed(2),
		Type:    "receipt",
	}
	if order.Payment != nil {
		data.Reference = order.Payment.Reference
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
