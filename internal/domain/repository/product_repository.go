package repository

import (
	"context"
	"errors"

	"menumaster/internal/domain/entity"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ProductRepository persists the catalog. An empty store holds the starter catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update replaces the product in place, keeping its list position.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// CartRepository exposes the in-memory active cart bound to the current transaction.
type CartRepository interface {
	// Cart returns the transaction's working copy. Mutations are kept only if the transaction commits.
	Cart(ctx context.Context) *entity.Cart
}

// OrderRepository persists completed orders. Orders are append-only.
type OrderRepository interface {
	List(ctx context.Context) ([]*entity.CompletedOrder, error)
	FindByID(ctx context.Context, id string) (*entity.CompletedOrder, error)
	Append(ctx context.Context, order *entity.CompletedOrder) error
}

// ReportRepository persists daily reports sorted by date ascending.
type ReportRepository interface {
	List(ctx context.Context) ([]*entity.DailyReport, error)
	// FindByDate returns nil without error when the date has no report.
	FindByDate(ctx context.Context, date string) (*entity.DailyReport, error)
	// Insert adds the report keeping the list sorted. It does not check for duplicates.
	Insert(ctx context.Context, report *entity.DailyReport) error
}

// SettingsRepository persists the store settings singleton.
type SettingsRepository interface {
	// Get returns nil without error when no settings were saved yet.
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Save(ctx context.Context, settings *entity.StoreSettings) error
}
