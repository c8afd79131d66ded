package adapter

import (
	"context"
	"time"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// EmailQueueRepository stores outgoing emails until the worker delivers them.
type EmailQueueRepository interface {
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// ClaimDue moves up to limit pending jobs scheduled at or before now into
	// processing and returns them. A job is handed to one caller only.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error)

	Save(ctx context.Context, job *entity.EmailJob) error

	// PurgeSent deletes delivered jobs processed before the cutoff.
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}
