package document

import (
	"context"
	"slices"

	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/repository"
	"menumaster/internal/infra/persistence/model"
)

type cartRepository struct {
	uow *unitOfWork
}

func (r *cartRepository) Cart(_ context.Context) *entity.Cart {
	return r.uow.cart
}

type orderRepository struct {
	uow *unitOfWork
}

func (r *orderRepository) List(ctx context.Context) ([]*entity.CompletedOrder, error) {
	orders, err := load(ctx, r.uow, ordersDoc)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.CompletedOrder, 0, len(orders))
	for _, order := range orders {
		result = append(result, order.ToEntity())
	}

	return result, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.CompletedOrder, error) {
	orders, err := load(ctx, r.uow, ordersDoc)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(orders, func(m model.CompletedOrderModel) bool { return m.ID == id })
	if idx < 0 {
		return nil, repository.ErrOrderNotFound
	}

	return orders[idx].ToEntity(), nil
}

func (r *orderRepository) Append(ctx context.Context, order *entity.CompletedOrder) error {
	orders, err := load(ctx, r.uow, ordersDoc)
	if err != nil {
		return err
	}

	stage(r.uow, ordersDoc, append(slices.Clip(orders), model.FromCompletedOrder(order)))

	return nil
}
