package document

import (
	"context"
	"slices"
	"strings"

	"menumaster/internal/domain/entity"
	"menumaster/internal/infra/persistence/model"
)

type reportRepository struct {
	uow *unitOfWork
}

func (r *reportRepository) List(ctx context.Context) ([]*entity.DailyReport, error) {
	reports, err := load(ctx, r.uow, reportsDoc)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.DailyReport, 0, len(reports))
	for _, report := range reports {
		result = append(result, report.ToEntity())
	}

	return result, nil
}

func (r *reportRepository) FindByDate(ctx context.Context, date string) (*entity.DailyReport, error) {
	reports, err := load(ctx, r.uow, reportsDoc)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(reports, func(m model.DailyReportModel) bool { return m.Date == date })
	if idx < 0 {
		return nil, nil
	}

	return reports[idx].ToEntity(), nil
}

func (r *reportRepository) Insert(ctx context.Context, report *entity.DailyReport) error {
	reports, err := load(ctx, r.uow, reportsDoc)
	if err != nil {
		return err
	}

	updated := append(slices.Clone(reports), model.FromDailyReport(report))
	slices.SortStableFunc(updated, func(a, b model.DailyReportModel) int {
		return strings.Compare(a.Date, b.Date)
	})
	stage(r.uow, reportsDoc, updated)

	return nil
}

type settingsRepository struct {
	uow *unitOfWork
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := load(ctx, r.uow, settingsDoc)
	if err != nil || settings == nil {
		return nil, err
	}

	return settings.ToEntity(), nil
}

func (r *settingsRepository) Save(_ context.Context, settings *entity.StoreSettings) error {
	doc := model.FromStoreSettings(settings)
	stage(r.uow, settingsDoc, &doc)

	return nil
}
