package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository returns the email_queue table as an adapter.EmailQueueRepository.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{db: db}
}

func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	return r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error
}

// ClaimDue selects due jobs and flips them to processing inside one
// transaction. The status guard on the update keeps a second worker from
// claiming a row the first already took.
func (r *emailQueueRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	var claimed []model.EmailQueueModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var due []model.EmailQueueModel
		if err := tx.
			Where("status = ? AND scheduled_at <= ?", entity.EmailStatusPending, now.UTC()).
			Order("scheduled_at ASC").
			Limit(limit).
			Find(&due).Error; err != nil {
			return err
		}

		for _, m := range due {
			res := tx.Model(&model.EmailQueueModel{}).
				Where("id = ? AND status = ?", m.ID, entity.EmailStatusPending).
				Update("status", entity.EmailStatusProcessing)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				m.Status = string(entity.EmailStatusProcessing)
				claimed = append(claimed, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to claim due emails", err)
	}

	jobs := make([]*entity.EmailJob, len(claimed))
	for i := range claimed {
		jobs[i] = claimed[i].ToEntity()
	}
	return jobs, nil
}

func (r *emailQueueRepository) Save(ctx context.Context, job *entity.EmailJob) error {
	if job.ID == uuid.Nil {
		return domainerror.ErrEmailJobNotFound
	}
	return r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error
}

func (r *emailQueueRepository) PurgeSent(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", entity.EmailStatusSent, before.UTC()).
		Delete(&model.EmailQueueModel{})
	return res.RowsAffected, res.Error
}
