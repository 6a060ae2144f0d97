package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"menumaster/config"
	"menumaster/internal/domain/entity"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/infra/clock"
	"menumaster/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeReportUsecase struct {
	usecase.ReportUsecase

	calls int
	err   error
}

func (f *fakeReportUsecase) FinalizeDay(_ context.Context) (*entity.DailyReport, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return &entity.DailyReport{Date: "2024-03-15", Total: decimal.RequireFromString("51.00")}, nil
}

func newTestScheduler(t *testing.T, cfg *config.Config, reportUC usecase.ReportUsecase) *scheduler {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	d, err := NewScheduler(Params{
		Lc:       lc,
		Cfg:      cfg,
		Clock:    &clock.Fixed{At: time.Date(2024, time.March, 15, 23, 0, 0, 0, time.UTC)},
		ReportUC: reportUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return d.(*scheduler)
}

func enabledConfig(spec string) *config.Config {
	cfg := &config.Config{Scheduler: &config.SchedulerConfig{}}
	cfg.Scheduler.FinalizeDay.Enabled = true
	cfg.Scheduler.FinalizeDay.Spec = spec

	return cfg
}

func TestNewScheduler_Disabled(t *testing.T) {
	s := newTestScheduler(t, &config.Config{}, &fakeReportUsecase{})

	assert.False(t, s.enabled)
	assert.Empty(t, s.cron.Entries())
	assert.NoError(t, s.Serve(context.Background()))
}

func TestNewScheduler_RegistersJob(t *testing.T) {
	s := newTestScheduler(t, enabledConfig("0 59 23 * * *"), &fakeReportUsecase{})

	assert.True(t, s.enabled)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler(Params{
		Lc:       fxtest.NewLifecycle(t),
		Cfg:      enabledConfig("every night"),
		Clock:    &clock.Fixed{},
		ReportUC: &fakeReportUsecase{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func TestFinalizeDay_Outcomes(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "finalized"},
		{name: "already finalized", err: errors.Wrap(domainerrors.ErrDayAlreadyFinalized, "day closed")},
		{name: "store failure", err: errors.New("disk full")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportUC := &fakeReportUsecase{err: tt.err}
			s := newTestScheduler(t, enabledConfig("0 59 23 * * *"), reportUC)

			assert.NotPanics(t, s.finalizeDay)
			assert.Equal(t, 1, reportUC.calls)
		})
	}
}

func TestServe_StartsAndStops(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	d, err := NewScheduler(Params{
		Lc:       lc,
		Cfg:      enabledConfig("0 59 23 * * *"),
		Clock:    &clock.Fixed{At: time.Date(2024, time.March, 15, 23, 0, 0, 0, time.UTC)},
		ReportUC: &fakeReportUsecase{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, d.Serve(context.Background()))
	lc.RequireStop()
}
