package document

import (
	"context"
	"slices"

	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/repository"
	"menumaster/internal/infra/persistence/model"
)

type productRepository struct {
	uow *unitOfWork
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := load(ctx, r.uow, productsDoc)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		result = append(result, product.ToEntity())
	}

	return result, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := load(ctx, r.uow, productsDoc)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(products, func(m model.ProductModel) bool { return m.ID == id })
	if idx < 0 {
		return nil, repository.ErrProductNotFound
	}

	return products[idx].ToEntity(), nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	products, err := load(ctx, r.uow, productsDoc)
	if err != nil {
		return err
	}

	stage(r.uow, productsDoc, append(slices.Clip(products), model.FromProduct(product)))

	return nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	products, err := load(ctx, r.uow, productsDoc)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(products, func(m model.ProductModel) bool { return m.ID == product.ID })
	if idx < 0 {
		return repository.ErrProductNotFound
	}

	updated := slices.Clone(products)
	updated[idx] = model.FromProduct(product)
	stage(r.uow, productsDoc, updated)

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	products, err := load(ctx, r.uow, productsDoc)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(products, func(m model.ProductModel) bool { return m.ID == id })
	if idx < 0 {
		return repository.ErrProductNotFound
	}

	stage(r.uow, productsDoc, slices.Delete(slices.Clone(products), idx, idx+1))

	return nil
}
