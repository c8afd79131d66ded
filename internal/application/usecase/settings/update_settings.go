package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// UpdateSettingsInput holds the company information. An empty CompanyName
// restores the default.
type UpdateSettingsInput struct {
	CompanyName string
	CNPJ        string
	Address     string
	Phone       string
	Email       string
}

// UpdateSettingsOutput represents the stored settings.
type UpdateSettingsOutput struct {
	Settings *entity.CompanySettings
}

// UpdateSettingsUseCase replaces the company information. The logo is untouched.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute performs the update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	settings, err := load(ctx, uc.settingsRepo)
	if err != nil {
		return nil, err
	}

	settings.CompanyName = strings.TrimSpace(input.CompanyName)
	if settings.CompanyName == "" {
		settings.CompanyName = entity.DefaultCompanyName
	}
	settings.CNPJ = strings.TrimSpace(input.CNPJ)
	settings.Address = strings.TrimSpace(input.Address)
	settings.Phone = strings.TrimSpace(input.Phone)
	settings.Email = strings.ToLower(strings.TrimSpace(input.Email))
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	slog.Info("Company settings updated")

	return &UpdateSettingsOutput{Settings: settings}, nil
}
