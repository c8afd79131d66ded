package category

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

type fakePrefsRepo struct {
	prefs map[uuid.UUID]*entity.CategoryPreferences
	saves int
}

func (r *fakePrefsRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.CategoryPreferences, error) {
	if p, ok := r.prefs[userID]; ok {
		return p, nil
	}
	return nil, domainerror.ErrCategoryPreferencesNotFound
}

func (r *fakePrefsRepo) Save(_ context.Context, p *entity.CategoryPreferences) error {
	r.saves++
	r.prefs[p.UserID] = p
	return nil
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
		code  domainerror.CategoryErrorCode
	}{
		{
			name:  "trims, dedupes and sorts with accents",
			input: []string{" Saúde", "educação", "Alimentação", "", "saúde", "Zoológico", "Água"},
			want:  []string{"Água", "Alimentação", "educação", "Saúde", "Zoológico"},
		},
		{
			name:  "only blanks",
			input: []string{" ", ""},
			code:  domainerror.ErrCodeEmptyCategoryList,
		},
		{
			name:  "name too long",
			input: []string{strings.Repeat("a", MaxCategoryNameLength+1)},
			code:  domainerror.ErrCodeCategoryNameTooLong,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.code != "" {
				var catErr *domainerror.CategoryError
				if !errors.As(err, &catErr) || catErr.Code != tt.code {
					t.Fatalf("expected %s, got %v", tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalize_TooMany(t *testing.T) {
	names := make([]string, MaxCategories+1)
	for i := range names {
		names[i] = uuid.NewString()
	}
	_, err := Normalize(names)
	if !errors.Is(err, domainerror.ErrTooManyCategories) {
		t.Errorf("expected too many categories, got %v", err)
	}
}

func TestPreferences_GetDefaultsThenSave(t *testing.T) {
	ctx := context.Background()
	repo := &fakePrefsRepo{prefs: map[uuid.UUID]*entity.CategoryPreferences{}}
	userID := uuid.New()

	got, err := NewGetPreferencesUseCase(repo).Execute(ctx, GetPreferencesInput{UserID: userID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsDefault || !reflect.DeepEqual(got.Categories, entity.DefaultExpenseCategories) {
		t.Errorf("expected defaults, got %+v", got)
	}
	if repo.saves != 0 {
		t.Error("defaults must not be persisted on read")
	}

	if _, err := NewSavePreferencesUseCase(repo).Execute(ctx, SavePreferencesInput{
		UserID:     userID,
		Categories: []string{"Transporte", "Aluguel"},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = NewGetPreferencesUseCase(repo).Execute(ctx, GetPreferencesInput{UserID: userID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IsDefault || !reflect.DeepEqual(got.Categories, []string{"Aluguel", "Transporte"}) {
		t.Errorf("expected saved list, got %+v", got)
	}
}
