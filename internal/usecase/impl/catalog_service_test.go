package impl

import (
	"context"
	"testing"

	"menumaster/internal/domain/entity"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/domain/repository"
	"menumaster/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(txManager repository.TransactionManager) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{TxManager: txManager, Logger: newDiscardLogger()})
}

func TestCatalogService_StarterCatalog(t *testing.T) {
	srv := newTestCatalogService(newTestTxManager(t))

	products, err := srv.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 10)

	categories, err := srv.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Todos", "Acompanhamentos", "Hambúrguer", "Pizzas", "Saladas", "Sucos e Milkshakes"}, categories)
}

func TestCatalogService_FilterProducts(t *testing.T) {
	srv := newTestCatalogService(newTestTxManager(t))
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  usecase.ProductFilter
		wantIDs []string
	}{
		{name: "all", filter: usecase.ProductFilter{Category: "Todos"}, wantIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
		{name: "category", filter: usecase.ProductFilter{Category: "Pizzas"}, wantIDs: []string{"2", "9"}},
		{name: "term in name", filter: usecase.ProductFilter{Term: "PIZZA"}, wantIDs: []string{"2", "9"}},
		{name: "term in description", filter: usecase.ProductFilter{Term: "croutons"}, wantIDs: []string{"3"}},
		{name: "term and category", filter: usecase.ProductFilter{Term: "queijo", Category: "Hambúrguer"}, wantIDs: []string{"1", "7"}},
		{name: "no match", filter: usecase.ProductFilter{Term: "sushi"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := srv.FilterProducts(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogService_AddProduct(t *testing.T) {
	srv := newTestCatalogService(newTestTxManager(t))
	ctx := context.Background()

	_, err := srv.AddProduct(ctx, &entity.Product{ID: "11", Name: "Água", Price: decimal.Zero, Category: "Bebidas"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.AddProduct(ctx, &entity.Product{ID: "1", Name: "Dup", Price: decimal.NewFromInt(1), Category: "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductExists))

	added, err := srv.AddProduct(ctx, &entity.Product{ID: " 11 ", Name: "Água", Price: decimal.RequireFromString("3.50"), Category: "Bebidas"})
	require.NoError(t, err)
	assert.Equal(t, "11", added.ID)

	products, err := srv.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 11)
	assert.Equal(t, "11", products[10].ID)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	srv := newTestCatalogService(newTestTxManager(t))
	ctx := context.Background()

	_, err := srv.UpdateProduct(ctx, &entity.Product{ID: "99", Name: "X", Price: decimal.NewFromInt(1), Category: "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	_, err = srv.UpdateProduct(ctx, &entity.Product{ID: "2", Name: "", Price: decimal.NewFromInt(1), Category: "Pizzas"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.UpdateProduct(ctx, &entity.Product{ID: "2", Name: "Pizza Napolitana", Price: decimal.NewFromInt(50), Category: "Pizzas"})
	require.NoError(t, err)

	products, err := srv.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Napolitana", products[1].Name)
}

func TestCatalogService_DeleteProduct_RemovesCartLine(t *testing.T) {
	txManager := newTestTxManager(t)
	srv := newTestCatalogService(txManager)
	cart := newTestCartService(t, txManager)
	ctx := context.Background()

	_, err := cart.srv.AddToCart(ctx, "1")
	require.NoError(t, err)
	_, err = cart.srv.AddToCart(ctx, "2")
	require.NoError(t, err)

	require.NoError(t, srv.DeleteProduct(ctx, "1"))

	view, err := cart.srv.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "2", view.Items[0].Product.ID)

	err = srv.DeleteProduct(ctx, "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
