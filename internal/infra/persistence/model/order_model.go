package model

import (
	"time"

	"menumaster/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CompletedOrderItemModel mirrors one order line.
type CompletedOrderItemModel struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CompletedOrderModel mirrors one element of the 'completed-orders' document.
// Timestamp is Unix milliseconds.
type CompletedOrderModel struct {
	ID        string                    `json:"id"`
	Timestamp int64                     `json:"timestamp"`
	Items     []CompletedOrderItemModel `json:"items"`
	Total     decimal.Decimal           `json:"total"`
	UserID    string                    `json:"userId,omitempty"`
}

func FromCompletedOrder(order *entity.CompletedOrder) CompletedOrderModel {
	items := make([]CompletedOrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, CompletedOrderItemModel{
			ID:       item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return CompletedOrderModel{
		ID:        order.ID,
		Timestamp: order.CreatedAt.UnixMilli(),
		Items:     items,
		Total:     order.Total,
		UserID:    order.UserID,
	}
}

func (m CompletedOrderModel) ToEntity() *entity.CompletedOrder {
	items := make([]entity.CompletedOrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.CompletedOrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return &entity.CompletedOrder{
		ID:        m.ID,
		CreatedAt: time.UnixMilli(m.Timestamp),
		Items:     items,
		Total:     m.Total,
		UserID:    m.UserID,
	}
}

// DailyReportModel mirrors one element of the 'monthly-reports' document.
type DailyReportModel struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

func FromDailyReport(report *entity.DailyReport) DailyReportModel {
	return DailyReportModel{Date: report.Date, Total: report.Total}
}

func (m DailyReportModel) ToEntity() *entity.DailyReport {
	return &entity.DailyReport{Date: m.Date, Total: m.Total}
}

// StoreSettingsModel mirrors the 'store-settings' document.
type StoreSettingsModel struct {
	Address string `json:"address"`
	CEP     string `json:"cep"`
	Number  string `json:"number"`
}

func FromStoreSettings(settings *entity.StoreSettings) StoreSettingsModel {
	return StoreSettingsModel{Address: settings.Address, CEP: settings.PostalCode, Number: settings.Number}
}

func (m StoreSettingsModel) ToEntity() *entity.StoreSettings {
	return &entity.StoreSettings{Address: m.Address, PostalCode: m.CEP, Number: m.Number}
}
