package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	if err := r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

func (r *expenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expensesToEntities(models), nil
}

func (r *expenseRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Order("date DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses between %s and %s: %w", from, to, err)
	}
	return expensesToEntities(models), nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Updates(map[string]any{
			"date":           expense.Date.UTC(),
			"category":       expense.Category,
			"value":          expense.Value,
			"payment_method": string(expense.PaymentMethod),
			"description":    expense.Description,
			"updated_at":     expense.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

func expensesToEntities(models []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses
}
