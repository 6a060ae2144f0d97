// Package scheduler runs the unattended daily close.
package scheduler

import (
	"context"
	"log/slog"

	"menumaster/config"
	"menumaster/internal/delivery"
	deliverycontext "menumaster/internal/delivery/context"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/domain/lifecycle"
	"menumaster/internal/domain/service"
	"menumaster/internal/usecase"
	"menumaster/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Clock    service.Clock
	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

type scheduler struct {
	enabled  bool
	spec     string
	cron     *cron.Cron
	clock    service.Clock
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewScheduler returns the delivery that closes the business day on a cron spec.
// It does nothing when scheduler.finalizeDay.enabled is false.
func NewScheduler(params Params) (delivery.Delivery, error) {
	s := &scheduler{
		cron:     cron.NewWithLocation(params.Clock.Location()),
		clock:    params.Clock,
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}

	if params.Cfg.Scheduler != nil && params.Cfg.Scheduler.FinalizeDay.Enabled {
		s.enabled = true
		s.spec = params.Cfg.Scheduler.FinalizeDay.Spec
		if err := s.cron.AddFunc(s.spec, s.finalizeDay); err != nil {
			return nil, errors.Wrapf(err, "invalid finalize day spec %q", s.spec)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func (s *scheduler) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("Finalize day scheduler disabled")

		return nil
	}

	attrs := []any{slog.String("spec", s.spec)}
	if schedule, err := cron.Parse(s.spec); err == nil {
		now := s.clock.Now()
		next := schedule.Next(now)
		attrs = append(attrs,
			slog.Time("next_run", next),
			slog.String("next_run_in", util.FormatDuration(next.Sub(now))),
		)
	}

	s.logger.Info("Starting finalize day scheduler", attrs...)
	s.cron.Start()

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	s.logger.Info("Stopping finalize day scheduler")
	s.cron.Stop()

	return nil
}

func (s *scheduler) finalizeDay() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	ctx, logger := deliverycontext.Scope(ctx, s.logger, uuid.NewString(), slog.String("job", "finalize_day"))

	report, err := s.reportUC.FinalizeDay(ctx)
	switch {
	case errors.Is(err, domainerrors.ErrDayAlreadyFinalized):
		logger.Info("Day already finalized, nothing to do")
	case err != nil:
		logger.Error("Failed to finalize day", slog.Any("error", err))
	default:
		logger.Info("Day finalized",
			slog.String("date", report.Date),
			slog.String("total", report.Total.StringFixed(2)),
		)
	}
}
