package impl

import (
	"context"
	"log/slog"

	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/repository"
	"menumaster/internal/domain/service"
	"menumaster/internal/usecase"
	"menumaster/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	notifier  service.OrderNotifier
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock
	Notifier  service.OrderNotifier
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		clock:     params.Clock,
		notifier:  params.Notifier,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context) (*usecase.CartView, error) {
	return srv.mutate(ctx, nil)
}

// AddToCart adds one unit of a catalog product.
func (srv *cartService) AddToCart(ctx context.Context, productID string) (*usecase.CartView, error) {
	return srv.mutate(ctx, func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		product, err := findProduct(ctx, repoFactory.ProductRepo(), productID)
		if err != nil {
			return err
		}
		cart.Add(*product)

		return nil
	})
}

// RemoveFromCart is a no-op for a product that is not in the cart.
func (srv *cartService) RemoveFromCart(ctx context.Context, productID string) (*usecase.CartView, error) {
	return srv.mutate(ctx, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.Remove(productID)

		return nil
	})
}

func (srv *cartService) ChangeQuantity(ctx context.Context, productID string, delta int) (*usecase.CartView, error) {
	return srv.mutate(ctx, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.ChangeQuantity(productID, delta)

		return nil
	})
}

// mutate runs change against the transaction's cart and returns the resulting view.
func (srv *cartService) mutate(
	ctx context.Context,
	change func(repository.RepositoryFactory, *entity.Cart) error,
) (*usecase.CartView, error) {
	var view *usecase.CartView
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart := repoFactory.CartRepo().Cart(ctx)
		if change != nil {
			if err := change(repoFactory, cart); err != nil {
				return err
			}
		}
		view = &usecase.CartView{Items: cart.Items(), Total: cart.Total()}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	return view, nil
}

// FinalizeOrder turns the cart into a completed order and empties the cart in the same unit of work.
func (srv *cartService) FinalizeOrder(ctx context.Context) (*entity.CompletedOrder, error) {
	var (
		order    *entity.CompletedOrder
		customer *entity.User
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart := repoFactory.CartRepo().Cart(ctx)
		if cart.IsEmpty() {
			return nil
		}

		var err error
		customer, err = repoFactory.SessionRepo().ActiveUser(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to read active session")
		}

		userID := ""
		if customer != nil {
			userID = customer.ID
		}

		order = entity.NewCompletedOrder(util.NewID("order"), srv.clock.Now(), cart.Items(), userID)
		if err := repoFactory.OrderRepo().Append(ctx, order); err != nil {
			return errors.Wrap(err, "failed to append order")
		}
		cart.Clear()

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Order finalization failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to finalize order")
	}

	if order == nil {
		srv.log(ctx).Debug("Checkout skipped, cart is empty")

		return nil, nil
	}

	srv.log(ctx).Info("Order finalized",
		slog.String("orderID", order.ID),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("items", len(order.Items)),
	)

	srv.notifier.OrderConfirmed(ctx, order, customer)

	return order, nil
}
