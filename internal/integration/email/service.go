// Package email queues and delivers account emails through Resend.
package email

import (
	"context"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

const subjectSuffix = " - Sistema Financeiro"

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{queue: queue}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	return s.enqueue(ctx, entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		"Redefinir sua senha"+subjectSuffix,
		templateData,
	))
}

// QueuePasswordChangedEmail queues the confirmation sent after a password reset.
func (s *Service) QueuePasswordChangedEmail(ctx context.Context, input adapter.QueuePasswordChangedInput) error {
	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"changed_at": input.ChangedAt,
	}

	return s.enqueue(ctx, entity.NewEmailJob(
		entity.TemplatePasswordChanged,
		input.UserEmail,
		input.UserName,
		"Sua senha foi alterada"+subjectSuffix,
		templateData,
	))
}

func (s *Service) enqueue(ctx context.Context, job *entity.EmailJob) error {
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue "+string(job.TemplateType)+" email",
			err,
		)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
