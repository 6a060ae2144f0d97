package usecase

import (
	"context"

	"menumaster/internal/domain/entity"
)

// ProductFilter selects catalog products. Empty fields match everything.
type ProductFilter struct {
	Term     string
	Category string
}

// CatalogUsecase defines catalog browsing and maintenance.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	FilterProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// Categories returns the synthetic all-categories entry followed by the sorted product categories.
	Categories(ctx context.Context) ([]string, error)
	AddProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// DeleteProduct removes the product and its cart line together.
	DeleteProduct(ctx context.Context, productID string) error
}
