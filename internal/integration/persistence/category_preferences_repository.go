package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

type categoryPreferencesRepository struct {
	db *gorm.DB
}

// NewCategoryPreferencesRepository creates a new category preferences repository instance.
func NewCategoryPreferencesRepository(db *gorm.DB) adapter.CategoryPreferencesRepository {
	return &categoryPreferencesRepository{
		db: db,
	}
}

func (r *categoryPreferencesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CategoryPreferences, error) {
	var prefsModel model.CategoryPreferencesModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryPreferencesNotFound
		}
		return nil, result.Error
	}
	return prefsModel.ToEntity(), nil
}

func (r *categoryPreferencesRepository) Save(ctx context.Context, prefs *entity.CategoryPreferences) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"categories", "updated_at"}),
		}).
		Create(model.CategoryPreferencesFromEntity(prefs))
	if result.Error != nil {
		return fmt.Errorf("failed to save category preferences: %w", result.Error)
	}
	return nil
}
