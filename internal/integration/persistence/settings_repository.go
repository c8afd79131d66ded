package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

// settingsRepository stores the single company_settings row.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.CompanySettings, error) {
	var settingsModel model.CompanySettingsModel
	result := r.db.WithContext(ctx).Order("created_at ASC").First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.CompanySettings) error {
	if err := r.db.WithContext(ctx).Save(model.CompanySettingsFromEntity(settings)).Error; err != nil {
		return fmt.Errorf("failed to save company settings: %w", err)
	}
	return nil
}
