package service

import "menumaster/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderReceiptQR renders a PNG QR code carrying the order receipt
	GenerateOrderReceiptQR(order *entity.CompletedOrder) ([]byte, error)

	// ParseOrderReceiptQR parses QR code data and returns the order ID
	ParseOrderReceiptQR(qrData string) (string, error)
}
