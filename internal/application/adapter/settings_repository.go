package adapter

import (
	"context"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// SettingsRepository persists the company settings singleton.
type SettingsRepository interface {
	// Get returns domain ErrSettingsNotFound before the first save.
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Save(ctx context.Context, settings *entity.CompanySettings) error
}
