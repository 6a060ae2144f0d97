package qrcode

import (
	"encoding/json"
	"strings"
	"time"

	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	receiptType = "menumaster_order"
	defaultSize = 256
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// ReceiptPayload is the JSON text encoded in a receipt QR code.
type ReceiptPayload struct {
	Type      string `json:"type"`
	OrderID   string `json:"order_id"`
	ShortCode string `json:"short_code"`
	Total     string `json:"total"`
	Timestamp string `json:"timestamp"`
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService takes the PNG edge in pixels and an L/M/Q/H recovery level. Unknown levels use M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{size: size, level: level}
}

func (s *qrcodeService) GenerateOrderReceiptQR(order *entity.CompletedOrder) ([]byte, error) {
	payload, err := json.Marshal(ReceiptPayload{
		Type:      receiptType,
		OrderID:   order.ID,
		ShortCode: order.ShortCode(),
		Total:     order.Total.StringFixed(2),
		Timestamp: order.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal receipt payload")
	}

	png, err := qrcode.Encode(string(payload), s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "encode receipt QR for %s", order.ID)
	}

	return png, nil
}

// ParseOrderReceiptQR returns the order id carried by a receipt payload.
func (s *qrcodeService) ParseOrderReceiptQR(qrData string) (string, error) {
	var payload ReceiptPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return "", errors.Wrap(err, "decode receipt payload")
	}

	switch {
	case payload.Type != receiptType:
		return "", errors.Errorf("not a receipt QR code: type %q", payload.Type)
	case payload.OrderID == "":
		return "", errors.New("receipt QR code has no order id")
	}

	return payload.OrderID, nil
}
