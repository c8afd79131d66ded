package auth

import (
	"context"
	"log/slog"

	"github.com/gestao-financeira/backend/internal/application/adapter"
)

// LogoutUserInput carries the refresh token of the session being closed.
// With AllDevices every session of the token's owner is revoked.
type LogoutUserInput struct {
	RefreshToken string
	AllDevices   bool
}

// LogoutUserUseCase revokes refresh tokens. Logout never fails from the
// client's point of view: an unknown or expired token is already logged out.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokenService: tokenService}
}

func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) {
	if input.RefreshToken == "" {
		return
	}

	if input.AllDevices {
		claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
		if err != nil {
			return
		}
		if err := uc.tokenService.InvalidateAllUserTokens(ctx, claims.UserID); err != nil {
			slog.Warn("Failed to revoke user sessions", "user_id", claims.UserID, "error", err)
		}
		return
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Debug("Refresh token not revoked on logout", "error", err)
	}
}
