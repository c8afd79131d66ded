package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	Description string
}

// SuggestCategoryOutput is the suggested category, always one of the user's categories.
type SuggestCategoryOutput struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase asks the AI provider for an expense category.
type SuggestCategoryUseCase struct {
	suggester adapter.CategorySuggester
	prefsRepo adapter.CategoryPreferencesRepository
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase. suggester may be nil.
func NewSuggestCategoryUseCase(suggester adapter.CategorySuggester, prefsRepo adapter.CategoryPreferencesRepository) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		suggester: suggester,
		prefsRepo: prefsRepo,
	}
}

// Execute suggests a category.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseRequestBody,
			"description is required",
			nil,
		)
	}

	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSuggestionUnavailable,
			domainerror.ErrCategorySuggestionUnavailable.Error(),
			domainerror.ErrCategorySuggestionUnavailable,
		)
	}

	categories := entity.DefaultExpenseCategories
	prefs, err := uc.prefsRepo.FindByUserID(ctx, input.UserID)
	switch {
	case err == nil:
		categories = prefs.Categories
	case !errors.Is(err, domainerror.ErrCategoryPreferencesNotFound):
		return nil, fmt.Errorf("failed to load category preferences: %w", err)
	}

	suggestion, err := uc.suggester.Suggest(ctx, description, categories)
	if err != nil {
		slog.Error("Category suggestion failed", "error", err, "user_id", input.UserID)
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSuggestionFailed,
			"failed to suggest a category",
			err,
		)
	}

	return &SuggestCategoryOutput{
		Category:   suggestion.Category,
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}
