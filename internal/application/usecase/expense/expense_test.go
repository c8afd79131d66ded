package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return r.expenses, nil
}

func (r *fakeExpenseRepo) FindBetween(_ context.Context, from, to time.Time) ([]*entity.Expense, error) {
	out := make([]*entity.Expense, 0)
	for _, e := range r.expenses {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

type fakePrefsRepo struct {
	prefs map[uuid.UUID]*entity.CategoryPreferences
}

func (r *fakePrefsRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.CategoryPreferences, error) {
	if p, ok := r.prefs[userID]; ok {
		return p, nil
	}
	return nil, domainerror.ErrCategoryPreferencesNotFound
}

func (r *fakePrefsRepo) Save(_ context.Context, p *entity.CategoryPreferences) error {
	r.prefs[p.UserID] = p
	return nil
}

type fakeSuggester struct {
	available bool
	err       error
	seen      []string
}

func (s *fakeSuggester) Suggest(_ context.Context, _ string, categories []string) (*adapter.CategorySuggestion, error) {
	s.seen = categories
	if s.err != nil {
		return nil, s.err
	}
	return &adapter.CategorySuggestion{Category: categories[0], Confidence: 0.9}, nil
}

func (s *fakeSuggester) IsAvailable() bool { return s.available }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func expenseCode(t *testing.T, err error) domainerror.ExpenseErrorCode {
	t.Helper()
	var expErr *domainerror.ExpenseError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected ExpenseError, got %v", err)
	}
	return expErr.Code
}

func validFields() ExpenseFields {
	return ExpenseFields{
		Date:          time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Category:      " Alimentação ",
		Value:         decPtr("42.50"),
		PaymentMethod: "Cartão de Débito",
		Description:   "Mercado",
	}
}

func TestCreateExpense(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *ExpenseFields)
		code   domainerror.ExpenseErrorCode
	}{
		{"valid", func(*ExpenseFields) {}, ""},
		{"missing date", func(f *ExpenseFields) { f.Date = time.Time{} }, domainerror.ErrCodeMissingExpenseFields},
		{"missing category", func(f *ExpenseFields) { f.Category = "  " }, domainerror.ErrCodeMissingExpenseFields},
		{"missing value", func(f *ExpenseFields) { f.Value = nil }, domainerror.ErrCodeMissingExpenseFields},
		{"zero value", func(f *ExpenseFields) { f.Value = decPtr("0") }, domainerror.ErrCodeInvalidExpenseValue},
		{"unknown payment", func(f *ExpenseFields) { f.PaymentMethod = "boleto" }, domainerror.ErrCodeInvalidExpensePayment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeExpenseRepo{}
			fields := validFields()
			tt.mutate(&fields)

			out, err := NewCreateExpenseUseCase(repo).Execute(context.Background(), CreateExpenseInput{fields})
			if tt.code != "" {
				if got := expenseCode(t, err); got != tt.code {
					t.Errorf("expected %s, got %s", tt.code, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Expense.Category != "Alimentação" || out.Expense.PaymentMethod != entity.PaymentMethodDebitCard {
				t.Errorf("unexpected expense: %+v", out.Expense)
			}
			if len(repo.expenses) != 1 {
				t.Error("expected expense stored")
			}
		})
	}
}

func TestUpdateAndDeleteExpense(t *testing.T) {
	ctx := context.Background()
	repo := &fakeExpenseRepo{}
	created, err := NewCreateExpenseUseCase(repo).Execute(ctx, CreateExpenseInput{validFields()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fields := validFields()
	fields.Category = "Transporte"
	out, err := NewUpdateExpenseUseCase(repo).Execute(ctx, UpdateExpenseInput{ExpenseID: created.Expense.ID, ExpenseFields: fields})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Expense.Category != "Transporte" {
		t.Errorf("expected category replaced, got %s", out.Expense.Category)
	}

	_, err = NewUpdateExpenseUseCase(repo).Execute(ctx, UpdateExpenseInput{ExpenseID: uuid.New(), ExpenseFields: fields})
	if got := expenseCode(t, err); got != domainerror.ErrCodeExpenseNotFound {
		t.Errorf("expected not found, got %s", got)
	}

	del := NewDeleteExpenseUseCase(repo)
	if _, err := del.Execute(ctx, DeleteExpenseInput{ExpenseID: created.Expense.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = del.Execute(ctx, DeleteExpenseInput{ExpenseID: created.Expense.ID})
	if got := expenseCode(t, err); got != domainerror.ErrCodeExpenseNotFound {
		t.Errorf("expected not found, got %s", got)
	}
}

func TestListExpenses(t *testing.T) {
	repo := &fakeExpenseRepo{expenses: []*entity.Expense{
		entity.NewExpense(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "Food", decimal.NewFromInt(30), entity.PaymentMethodPIX, ""),
		entity.NewExpense(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), "Transport", decimal.NewFromInt(20), entity.PaymentMethodCash, ""),
		entity.NewExpense(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), "Food", decimal.NewFromInt(50), entity.PaymentMethodPIX, ""),
	}}
	uc := NewListExpensesUseCase(repo, nil)

	out, err := uc.Execute(context.Background(), ListExpensesInput{Filter: aggregation.Filter{Category: "food"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Expenses) != 2 || !out.Total.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected 2 expenses totalling 80, got %d %s", len(out.Expenses), out.Total)
	}

	out, err = uc.Execute(context.Background(), ListExpensesInput{Filter: aggregation.Filter{PaymentMethod: "CASH"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Expenses) != 1 || out.Expenses[0].Category != "Transport" {
		t.Errorf("unexpected payment filter result: %+v", out.Expenses)
	}
}

func TestSuggestCategory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unavailable without provider", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(nil, &fakePrefsRepo{prefs: map[uuid.UUID]*entity.CategoryPreferences{}})
		_, err := uc.Execute(ctx, SuggestCategoryInput{UserID: userID, Description: "Uber"})
		if got := expenseCode(t, err); got != domainerror.ErrCodeSuggestionUnavailable {
			t.Errorf("expected unavailable, got %s", got)
		}
		if !errors.Is(err, domainerror.ErrCategorySuggestionUnavailable) {
			t.Error("expected sentinel in chain")
		}
	})

	t.Run("uses defaults when nothing saved", func(t *testing.T) {
		s := &fakeSuggester{available: true}
		uc := NewSuggestCategoryUseCase(s, &fakePrefsRepo{prefs: map[uuid.UUID]*entity.CategoryPreferences{}})
		out, err := uc.Execute(ctx, SuggestCategoryInput{UserID: userID, Description: "Uber"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category != entity.DefaultExpenseCategories[0] || len(s.seen) != len(entity.DefaultExpenseCategories) {
			t.Errorf("expected default categories offered, got %v", s.seen)
		}
	})

	t.Run("uses saved preferences", func(t *testing.T) {
		s := &fakeSuggester{available: true}
		prefs := &fakePrefsRepo{prefs: map[uuid.UUID]*entity.CategoryPreferences{
			userID: {UserID: userID, Categories: []string{"Combustível"}},
		}}
		out, err := NewSuggestCategoryUseCase(s, prefs).Execute(ctx, SuggestCategoryInput{UserID: userID, Description: "Posto"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category != "Combustível" {
			t.Errorf("expected saved category, got %s", out.Category)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		s := &fakeSuggester{available: true, err: errors.New("quota")}
		uc := NewSuggestCategoryUseCase(s, &fakePrefsRepo{prefs: map[uuid.UUID]*entity.CategoryPreferences{}})
		_, err := uc.Execute(ctx, SuggestCategoryInput{UserID: userID, Description: "Uber"})
		if got := expenseCode(t, err); got != domainerror.ErrCodeSuggestionFailed {
			t.Errorf("expected failed, got %s", got)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&fakeSuggester{available: true}, &fakePrefsRepo{})
		_, err := uc.Execute(ctx, SuggestCategoryInput{UserID: userID, Description: " "})
		if got := expenseCode(t, err); got != domainerror.ErrCodeInvalidExpenseRequestBody {
			t.Errorf("expected invalid body, got %s", got)
		}
	})
}
