package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult carries the provider's message ID.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send delivers an email through the provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing account emails.
type EmailService interface {
	// QueuePasswordResetEmail queues the email carrying the reset link.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// QueuePasswordChangedEmail queues the confirmation sent after a reset.
	QueuePasswordChangedEmail(ctx context.Context, input QueuePasswordChangedInput) error
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueuePasswordChangedInput represents the input for queueing a password changed email.
type QueuePasswordChangedInput struct {
	UserEmail string
	UserName  string
	ChangedAt string
}
