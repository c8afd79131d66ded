package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// UserRepository persists accounts. Lookups by email are case-insensitive;
// a missing user is reported as domainerror.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *entity.User) error

	// Count reports how many accounts exist; registration promotes the
	// first one to admin.
	Count(ctx context.Context) (int64, error)
}
