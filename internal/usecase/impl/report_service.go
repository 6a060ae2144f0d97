package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/entity"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/domain/repository"
	"menumaster/internal/domain/service"
	"menumaster/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type reportService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		txManager: params.TxManager,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) today() string {
	return entity.DateKey(srv.clock.Now(), srv.clock.Location())
}

func (srv *reportService) IsDayFinalized(ctx context.Context, date string) (bool, error) {
	if _, err := entity.ParseDateKey(date); err != nil {
		return false, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("data inválida: "+date), err.Error())
	}

	finalized := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		report, err := repoFactory.ReportRepo().FindByDate(ctx, date)
		finalized = report != nil

		return err
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to check day")
	}

	return finalized, nil
}

// FinalizeDay closes today. A day is closed at most once.
func (srv *reportService) FinalizeDay(ctx context.Context) (*entity.DailyReport, error) {
	date := srv.today()

	var report *entity.DailyReport
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reportRepo := repoFactory.ReportRepo()

		existing, err := reportRepo.FindByDate(ctx, date)
		if err != nil {
			return errors.Wrap(err, "failed to find report")
		}
		if existing != nil {
			return errors.Wrapf(domainerrors.ErrDayAlreadyFinalized, "date %s", date)
		}

		orders, err := repoFactory.OrderRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}

		_, total := srv.ordersOn(orders, date)
		report = &entity.DailyReport{Date: date, Total: total}

		return errors.Wrap(reportRepo.Insert(ctx, report), "failed to insert report")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to finalize day")
	}

	srv.log(ctx).Info("Day finalized", slog.String("date", date), slog.String("total", report.Total.StringFixed(2)))

	return report, nil
}

func (srv *reportService) TodaySummary(ctx context.Context) (*usecase.TodaySummary, error) {
	date := srv.today()

	detail, err := srv.DayDetail(ctx, date)
	if err != nil {
		return nil, err
	}

	return &usecase.TodaySummary{
		Date:      date,
		Orders:    detail.Orders,
		Total:     detail.Total,
		Finalized: detail.Report != nil,
	}, nil
}

// GeneralReport lists finalized days newest first.
func (srv *reportService) GeneralReport(ctx context.Context) (*usecase.GeneralReport, error) {
	var reports []*entity.DailyReport
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		reports, err = repoFactory.ReportRepo().List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	grandTotal := decimal.Zero
	for _, report := range reports {
		grandTotal = grandTotal.Add(report.Total)
	}
	slices.SortStableFunc(reports, func(a, b *entity.DailyReport) int {
		return strings.Compare(b.Date, a.Date)
	})

	return &usecase.GeneralReport{Reports: reports, GrandTotal: grandTotal}, nil
}

// DayDetail includes orders whose owner was deleted.
func (srv *reportService) DayDetail(ctx context.Context, date string) (*usecase.DayDetail, error) {
	if _, err := entity.ParseDateKey(date); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("data inválida: "+date), err.Error())
	}

	detail := &usecase.DayDetail{Date: date}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		report, err := repoFactory.ReportRepo().FindByDate(ctx, date)
		if err != nil {
			return errors.Wrap(err, "failed to find report")
		}
		detail.Report = report

		orders, err := repoFactory.OrderRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		detail.Orders, detail.Total = srv.ordersOn(orders, date)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load day detail")
	}

	return detail, nil
}

// ordersOn returns the orders placed on the local calendar date and their summed totals.
func (srv *reportService) ordersOn(orders []*entity.CompletedOrder, date string) ([]*entity.CompletedOrder, decimal.Decimal) {
	loc := srv.clock.Location()

	matched := make([]*entity.CompletedOrder, 0)
	total := decimal.Zero
	for _, order := range orders {
		if entity.DateKey(order.CreatedAt, loc) != date {
			continue
		}
		matched = append(matched, order)
		total = total.Add(order.Total)
	}

	return matched, total
}
