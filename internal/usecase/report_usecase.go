package usecase

import (
	"context"

	"menumaster/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// TodaySummary is the running state of the current business day.
type TodaySummary struct {
	Date      string
	Orders    []*entity.CompletedOrder
	Total     decimal.Decimal
	Finalized bool
}

// GeneralReport lists every finalized day, newest first.
type GeneralReport struct {
	Reports    []*entity.DailyReport
	GrandTotal decimal.Decimal
}

// DayDetail is one day's report, if finalized, with the orders placed that day.
type DayDetail struct {
	Date   string
	Report *entity.DailyReport
	Orders []*entity.CompletedOrder
	Total  decimal.Decimal
}

// ReportUsecase defines the daily close and the admin reports.
type ReportUsecase interface {
	IsDayFinalized(ctx context.Context, date string) (bool, error)
	FinalizeDay(ctx context.Context) (*entity.DailyReport, error)
	TodaySummary(ctx context.Context) (*TodaySummary, error)
	GeneralReport(ctx context.Context) (*GeneralReport, error)
	DayDetail(ctx context.Context, date string) (*DayDetail, error)
}

// OrderUsecase defines read access to completed orders.
type OrderUsecase interface {
	GetOrder(ctx context.Context, orderID string) (*entity.CompletedOrder, error)
	// OrderHistory returns the user's orders, newest first.
	OrderHistory(ctx context.Context, userID string) ([]*entity.CompletedOrder, error)
	// ReceiptQR renders the order receipt as a PNG QR code.
	ReceiptQR(ctx context.Context, orderID string) ([]byte, error)
	// VerifyReceipt resolves the payload scanned from a receipt QR code to its order.
	VerifyReceipt(ctx context.Context, qrData string) (*entity.CompletedOrder, error)
}
