package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// GetClientInput represents the input for loading a client.
type GetClientInput struct {
	ClientID uuid.UUID
}

// GetClientOutput represents the loaded client.
type GetClientOutput struct {
	Client *entity.Client
}

// GetClientUseCase loads a single client.
type GetClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewGetClientUseCase creates a new GetClientUseCase instance.
func NewGetClientUseCase(clientRepo adapter.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{clientRepo: clientRepo}
}

// Execute loads the client.
func (uc *GetClientUseCase) Execute(ctx context.Context, input GetClientInput) (*GetClientOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &GetClientOutput{Client: client}, nil
}
