package email

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	"github.com/gestao-financeira/backend/internal/integration/email/templates"
)

type memoryQueue struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *memoryQueue) Enqueue(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) ClaimDue(_ context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) && len(out) < limit {
			job.MarkProcessing()
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *memoryQueue) Save(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) PurgeSent(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (q *memoryQueue) byRecipient(email string) []*entity.EmailJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			out = append(out, job)
		}
	}
	return out
}

func newTestWorker(t *testing.T, queue *memoryQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer("Loja Teste")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, WorkerConfig{})
}

func TestWorker_SendsQueuedPasswordReset(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := NewMockEmailSender()
	service := NewService(queue)

	err := service.QueuePasswordResetEmail(ctx, adapterResetInput())
	if err != nil {
		t.Fatalf("queue: %v", err)
	}

	newTestWorker(t, queue, sender).ProcessNow(ctx)

	sent := sender.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(sent))
	}
	if !strings.Contains(sent[0].HTML, "https://app.example.com/reset?token=abc") {
		t.Errorf("reset link missing from HTML body")
	}
	if !strings.Contains(sent[0].Text, "Loja Teste") {
		t.Errorf("company name missing from text body: %q", sent[0].Text)
	}
	if !strings.Contains(sent[0].Text, "1 hora") {
		t.Errorf("expiry missing from text body: %q", sent[0].Text)
	}

	jobs := queue.byRecipient("maria@example.com")
	if jobs[0].Status != entity.EmailStatusSent || jobs[0].ProviderID != "mock-1" {
		t.Errorf("expected sent job with provider id, got %s / %s", jobs[0].Status, jobs[0].ProviderID)
	}
}

func TestWorker_FailureHandling(t *testing.T) {
	tests := []struct {
		name       string
		permanent  bool
		wantStatus entity.EmailStatus
	}{
		{name: "temporary failure is rescheduled", permanent: false, wantStatus: entity.EmailStatusPending},
		{name: "permanent failure stops retries", permanent: true, wantStatus: entity.EmailStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			queue := newMemoryQueue()
			sender := NewMockEmailSender()
			sender.SetFailure(errors.New("provider down"), tt.permanent)

			if err := NewService(queue).QueuePasswordChangedEmail(ctx, adapterChangedInput()); err != nil {
				t.Fatalf("queue: %v", err)
			}
			newTestWorker(t, queue, sender).ProcessNow(ctx)

			jobs := queue.byRecipient("maria@example.com")
			if len(jobs) != 1 {
				t.Fatalf("expected 1 job, got %d", len(jobs))
			}
			if jobs[0].Status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, jobs[0].Status)
			}
			if jobs[0].Attempts != 1 {
				t.Errorf("expected 1 attempt, got %d", jobs[0].Attempts)
			}
		})
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("422 validation_error: invalid to address"), true},
		{errors.New("401 unauthorized"), true},
		{errors.New("429 rate limit exceeded"), false},
		{errors.New("503 service unavailable"), false},
		{nil, false},
	}
	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			if got := isPermanentError(tt.err); got != tt.want {
				t.Errorf("isPermanentError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func adapterResetInput() adapter.QueuePasswordResetInput {
	return adapter.QueuePasswordResetInput{
		UserEmail: "maria@example.com",
		UserName:  "Maria",
		ResetURL:  "https://app.example.com/reset?token=abc",
		ExpiresIn: "1 hora",
	}
}

func adapterChangedInput() adapter.QueuePasswordChangedInput {
	return adapter.QueuePasswordChangedInput{
		UserEmail: "maria@example.com",
		UserName:  "Maria",
		ChangedAt: "17/10/2026 10:00",
	}
}
