// Package settings contains the company settings and logo use cases.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// GetSettingsOutput represents the company settings.
type GetSettingsOutput struct {
	Settings *entity.CompanySettings
}

// GetSettingsUseCase returns the company settings, creating them on first read.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute loads the settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	settings, err := load(ctx, uc.settingsRepo)
	if err != nil {
		return nil, err
	}
	return &GetSettingsOutput{Settings: settings}, nil
}

// load returns the stored settings or saves and returns the defaults.
func load(ctx context.Context, repo adapter.SettingsRepository) (*entity.CompanySettings, error) {
	settings, err := repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, domainerror.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings = entity.NewCompanySettings()
	if err := repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return settings, nil
}
