package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// TokenPair is what login, registration and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims is the identity carried by a validated token. Role drives the
// admin-only routes (company settings, logo upload).
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and checks JWTs. Refresh tokens are single use: the
// refresh flow revokes the presented token before issuing a new pair.
type TokenService interface {
	// GenerateTokenPair uses the extended lifetimes when rememberMe is set.
	GenerateTokenPair(ctx context.Context, user *entity.User, rememberMe bool) (*TokenPair, error)

	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	InvalidateRefreshToken(ctx context.Context, token string) error
	// InvalidateAllUserTokens ends every session of the user, used after a
	// password reset.
	InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// PasswordResetToken is the opaque token emailed by the forgot-password flow.
type PasswordResetToken struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// PasswordResetTokenService manages forgot-password tokens. A token is valid
// for one reset.
type PasswordResetTokenService interface {
	GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*PasswordResetToken, error)
	ValidateResetToken(ctx context.Context, token string) (*PasswordResetToken, error)
	InvalidateResetToken(ctx context.Context, token string) error
}
