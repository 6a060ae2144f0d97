package usecase

import (
	"context"

	"menumaster/internal/domain/entity"
)

// SettingsUsecase defines the store settings singleton.
type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*entity.StoreSettings, error)
	UpdateSettings(ctx context.Context, patch entity.StoreSettingsPatch) (*entity.StoreSettings, error)
}
