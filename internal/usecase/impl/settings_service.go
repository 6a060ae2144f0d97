package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/repository"
	"menumaster/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// GetSettings returns the empty record when nothing was saved.
func (srv *settingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings := &entity.StoreSettings{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.SettingsRepo().Get(ctx)
		if stored != nil {
			settings = stored
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	return settings, nil
}

func (srv *settingsService) UpdateSettings(ctx context.Context, patch entity.StoreSettingsPatch) (*entity.StoreSettings, error) {
	trimPatch(&patch)

	var merged entity.StoreSettings
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settingsRepo := repoFactory.SettingsRepo()

		current, err := settingsRepo.Get(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to get settings")
		}
		if current == nil {
			current = &entity.StoreSettings{}
		}

		merged = current.Merge(patch)

		return errors.Wrap(settingsRepo.Save(ctx, &merged), "failed to save settings")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Store settings updated")

	return &merged, nil
}

func trimPatch(patch *entity.StoreSettingsPatch) {
	for _, field := range []**string{&patch.Address, &patch.PostalCode, &patch.Number} {
		if *field != nil {
			trimmed := strings.TrimSpace(**field)
			*field = &trimmed
		}
	}
}
