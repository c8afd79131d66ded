package client

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrClientNotFound
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.clients[id]; !ok {
		return domainerror.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func clientCode(t *testing.T, err error) domainerror.ClientErrorCode {
	t.Helper()
	var cliErr *domainerror.ClientError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected ClientError, got %v", err)
	}
	return cliErr.Code
}

func TestCreateClient(t *testing.T) {
	tests := []struct {
		name   string
		fields ClientFields
		code   domainerror.ClientErrorCode
	}{
		{"valid", ClientFields{Name: "Maria", Email: " Maria@Example.com ", Address: entity.Address{City: "Recife", State: "PE"}}, ""},
		{"email optional", ClientFields{Name: "João"}, ""},
		{"missing name", ClientFields{Email: "a@b.com"}, domainerror.ErrCodeClientNameRequired},
		{"invalid email", ClientFields{Name: "Maria", Email: "not-an-email"}, domainerror.ErrCodeInvalidClientEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeClientRepo{clients: map[uuid.UUID]*entity.Client{}}
			out, err := NewCreateClientUseCase(repo).Execute(context.Background(), CreateClientInput{tt.fields})
			if tt.code != "" {
				if got := clientCode(t, err); got != tt.code {
					t.Errorf("expected %s, got %s", tt.code, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.fields.Email != "" && out.Client.Email != "maria@example.com" {
				t.Errorf("expected normalised email, got %q", out.Client.Email)
			}
		})
	}
}

func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &fakeClientRepo{clients: map[uuid.UUID]*entity.Client{}}

	created, err := NewCreateClientUseCase(repo).Execute(ctx, CreateClientInput{ClientFields{Name: "Maria"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Client.ID

	updated, err := NewUpdateClientUseCase(repo).Execute(ctx, UpdateClientInput{
		ClientID:     id,
		ClientFields: ClientFields{Name: "Maria Silva", Phone: "81999990000"},
	})
	if err != nil || updated.Client.Name != "Maria Silva" {
		t.Fatalf("update: %v", err)
	}

	_, err = NewUpdateClientUseCase(repo).Execute(ctx, UpdateClientInput{ClientID: uuid.New(), ClientFields: ClientFields{Name: "X"}})
	if code := clientCode(t, err); code != domainerror.ErrCodeClientNotFound {
		t.Errorf("expected not found, got %s", code)
	}

	list, err := NewListClientsUseCase(repo).Execute(ctx)
	if err != nil || len(list.Clients) != 1 {
		t.Fatalf("list: %v", err)
	}

	if _, err := NewDeleteClientUseCase(repo).Execute(ctx, DeleteClientInput{ClientID: id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = NewGetClientUseCase(repo).Execute(ctx, GetClientInput{ClientID: id})
	if code := clientCode(t, err); code != domainerror.ErrCodeClientNotFound {
		t.Errorf("expected not found, got %s", code)
	}
}
