package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names, in characters.
	MaxCategoryNameLength = 50

	// MaxCategories is the maximum size of a user's list.
	MaxCategories = 100
)

// SavePreferencesInput represents the input for replacing a user's categories.
type SavePreferencesInput struct {
	UserID     uuid.UUID
	Categories []string
}

// SavePreferencesOutput holds the list as stored.
type SavePreferencesOutput struct {
	Categories []string
}

// SavePreferencesUseCase replaces the expense categories of a user.
type SavePreferencesUseCase struct {
	prefsRepo adapter.CategoryPreferencesRepository
}

// NewSavePreferencesUseCase creates a new SavePreferencesUseCase instance.
func NewSavePreferencesUseCase(prefsRepo adapter.CategoryPreferencesRepository) *SavePreferencesUseCase {
	return &SavePreferencesUseCase{prefsRepo: prefsRepo}
}

// Execute normalises and stores the list.
func (uc *SavePreferencesUseCase) Execute(ctx context.Context, input SavePreferencesInput) (*SavePreferencesOutput, error) {
	categories, err := Normalize(input.Categories)
	if err != nil {
		return nil, err
	}

	prefs := &entity.CategoryPreferences{
		UserID:     input.UserID,
		Categories: categories,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := uc.prefsRepo.Save(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save category preferences: %w", err)
	}

	slog.Info("Category preferences saved", "user_id", input.UserID, "count", len(categories))

	return &SavePreferencesOutput{Categories: categories}, nil
}

// Normalize trims names, drops empty ones, removes case-insensitive duplicates
// (the first spelling wins) and sorts with pt-BR collation.
func Normalize(names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > MaxCategoryNameLength {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameTooLong,
				fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
				domainerror.ErrCategoryNameTooLong,
			)
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}

	if len(out) == 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyCategoryList,
			domainerror.ErrEmptyCategoryList.Error(),
			domainerror.ErrEmptyCategoryList,
		)
	}
	if len(out) > MaxCategories {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeTooManyCategories,
			fmt.Sprintf("at most %d categories are allowed", MaxCategories),
			domainerror.ErrTooManyCategories,
		)
	}

	collate.New(language.BrazilianPortuguese, collate.IgnoreCase).SortStrings(out)
	return out, nil
}
