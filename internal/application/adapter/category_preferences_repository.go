package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// CategoryPreferencesRepository persists each user's expense category list.
type CategoryPreferencesRepository interface {
	// FindByUserID returns domain ErrCategoryPreferencesNotFound when nothing was saved.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CategoryPreferences, error)

	// Save replaces the user's list.
	Save(ctx context.Context, prefs *entity.CategoryPreferences) error
}
