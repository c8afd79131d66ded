package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// FindByMonth retrieves the goal of a month.
func (r *goalRepository) FindByMonth(ctx context.Context, month, year int) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("month = ? AND year = ?", month, year).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// Create creates a new goal. A concurrent create for the same month is a no-op.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(model.GoalFromEntity(goal))
	if result.Error != nil {
		return fmt.Errorf("failed to create goal: %w", result.Error)
	}
	return nil
}

// Upsert creates or replaces the targets of the month's goal and reloads it into goal.
func (r *goalRepository) Upsert(ctx context.Context, goal *entity.Goal) error {
	goal.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"sales_target", "units_target", "updated_at"}),
		}).
		Create(model.GoalFromEntity(goal))
	if result.Error != nil {
		return fmt.Errorf("failed to upsert goal: %w", result.Error)
	}

	stored, err := r.FindByMonth(ctx, goal.Month, goal.Year)
	if err != nil {
		return err
	}
	*goal = *stored
	return nil
}
