package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/entity"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/domain/repository"
	"menumaster/internal/domain/service"
	"menumaster/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) GetOrder(ctx context.Context, orderID string) (*entity.CompletedOrder, error) {
	var order *entity.CompletedOrder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = repoFactory.OrderRepo().FindByID(ctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrapf(domainerrors.ErrOrderNotFound, "order %s", orderID)
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (srv *orderService) OrderHistory(ctx context.Context, userID string) ([]*entity.CompletedOrder, error) {
	var orders []*entity.CompletedOrder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.OrderRepo().List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	history := slices.DeleteFunc(orders, func(order *entity.CompletedOrder) bool {
		return order.UserID == "" || order.UserID != userID
	})
	slices.SortStableFunc(history, func(a, b *entity.CompletedOrder) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return history, nil
}

func (srv *orderService) ReceiptQR(ctx context.Context, orderID string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeSvc.GenerateOrderReceiptQR(order)
	if err != nil {
		srv.log(ctx).Error("Failed to generate receipt QR", slog.String("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (srv *orderService) VerifyReceipt(ctx context.Context, qrData string) (*entity.CompletedOrder, error) {
	orderID, err := srv.qrCodeSvc.ParseOrderReceiptQR(qrData)
	if err != nil {
		srv.log(ctx).Warn("Rejected receipt payload", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("recibo inválido"), err.Error())
	}

	return srv.GetOrder(ctx, orderID)
}
