// Package category contains the expense-category preference use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// GetPreferencesInput represents the input for loading a user's categories.
type GetPreferencesInput struct {
	UserID uuid.UUID
}

// GetPreferencesOutput holds the user's categories. IsDefault is true when the
// user never saved a list.
type GetPreferencesOutput struct {
	Categories []string
	IsDefault  bool
}

// GetPreferencesUseCase loads the expense categories of a user.
type GetPreferencesUseCase struct {
	prefsRepo adapter.CategoryPreferencesRepository
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(prefsRepo adapter.CategoryPreferencesRepository) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{prefsRepo: prefsRepo}
}

// Execute returns the saved list, or the defaults without persisting them.
func (uc *GetPreferencesUseCase) Execute(ctx context.Context, input GetPreferencesInput) (*GetPreferencesOutput, error) {
	prefs, err := uc.prefsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryPreferencesNotFound) {
			return &GetPreferencesOutput{
				Categories: entity.NewDefaultCategoryPreferences(input.UserID).Categories,
				IsDefault:  true,
			}, nil
		}
		return nil, fmt.Errorf("failed to load category preferences: %w", err)
	}
	return &GetPreferencesOutput{Categories: prefs.Categories}, nil
}
