package goal

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals   map[string]*entity.Goal
	creates int
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]*entity.Goal)}
}

func goalKey(month, year int) string { return fmt.Sprintf("%02d/%d", month, year) }

func (r *fakeGoalRepo) FindByMonth(_ context.Context, month, year int) (*entity.Goal, error) {
	if g, ok := r.goals[goalKey(month, year)]; ok {
		return g, nil
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	r.creates++
	if _, ok := r.goals[goalKey(g.Month, g.Year)]; !ok {
		r.goals[goalKey(g.Month, g.Year)] = g
	}
	return nil
}

func (r *fakeGoalRepo) Upsert(_ context.Context, g *entity.Goal) error {
	if existing, ok := r.goals[goalKey(g.Month, g.Year)]; ok {
		g.ID = existing.ID
		g.CreatedAt = existing.CreatedAt
	}
	r.goals[goalKey(g.Month, g.Year)] = g
	return nil
}

func TestGetGoal_CreatesEmptyOnce(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGoalRepo()
	uc := NewGetGoalUseCase(repo)

	first, err := uc.Execute(ctx, GetGoalInput{Month: 3, Year: 2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Goal.SalesTarget.IsZero() || first.Goal.UnitsTarget != 0 {
		t.Errorf("expected zero targets, got %+v", first.Goal)
	}

	second, err := uc.Execute(ctx, GetGoalInput{Month: 3, Year: 2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Goal.ID != first.Goal.ID || repo.creates != 1 {
		t.Errorf("expected the same goal without a second create, creates=%d", repo.creates)
	}
}

func TestGoal_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input UpsertGoalInput
		code  domainerror.GoalErrorCode
	}{
		{"month zero", UpsertGoalInput{Month: 0, Year: 2024}, domainerror.ErrCodeInvalidGoalMonth},
		{"month thirteen", UpsertGoalInput{Month: 13, Year: 2024}, domainerror.ErrCodeInvalidGoalMonth},
		{"year out of range", UpsertGoalInput{Month: 1, Year: 1999}, domainerror.ErrCodeInvalidGoalYear},
		{"negative sales target", UpsertGoalInput{Month: 1, Year: 2024, SalesTarget: decimal.NewFromInt(-1)}, domainerror.ErrCodeInvalidGoalTarget},
		{"negative units target", UpsertGoalInput{Month: 1, Year: 2024, UnitsTarget: -5}, domainerror.ErrCodeInvalidGoalTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUpsertGoalUseCase(newFakeGoalRepo()).Execute(context.Background(), tt.input)
			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) || goalErr.Code != tt.code {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestUpsertGoal_ReplacesTargets(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGoalRepo()

	created, err := NewGetGoalUseCase(repo).Execute(ctx, GetGoalInput{Month: 5, Year: 2024})
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	out, err := NewUpsertGoalUseCase(repo).Execute(ctx, UpsertGoalInput{
		Month: 5, Year: 2024, SalesTarget: decimal.NewFromInt(5000), UnitsTarget: 200,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if out.Goal.ID != created.Goal.ID {
		t.Error("expected the existing goal to be updated")
	}
	if !out.Goal.SalesTarget.Equal(decimal.NewFromInt(5000)) || out.Goal.UnitsTarget != 200 {
		t.Errorf("unexpected targets: %+v", out.Goal)
	}
}
