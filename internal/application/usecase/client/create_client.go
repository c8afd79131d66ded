package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	ClientFields
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{clientRepo: clientRepo}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	fields, err := input.validate()
	if err != nil {
		return nil, err
	}

	client := entity.NewClient(fields.Name, fields.CPF, fields.Email, fields.Phone, fields.Address)
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	slog.Info("Client created", "client_id", client.ID)

	return &CreateClientOutput{Client: client}, nil
}
