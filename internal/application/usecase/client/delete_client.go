package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ClientID uuid.UUID
}

// DeleteClientOutput represents the output of client deletion.
type DeleteClientOutput struct {
	Message string
}

// DeleteClientUseCase handles client deletion logic.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{clientRepo: clientRepo}
}

// Execute deletes the client.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) (*DeleteClientOutput, error) {
	if err := uc.clientRepo.Delete(ctx, input.ClientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}
	slog.Info("Client deleted", "client_id", input.ClientID)
	return &DeleteClientOutput{Message: "Cliente excluído com sucesso"}, nil
}
