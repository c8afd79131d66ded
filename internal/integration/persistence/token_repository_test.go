package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	if err := db.AutoMigrate(&model.RefreshTokenModel{}, &model.PasswordResetTokenModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	repo := NewTokenRepository(db)
	userID := uuid.New()
	future := time.Now().Add(time.Hour)

	t.Run("refresh tokens revoke individually and per user", func(t *testing.T) {
		for _, d := range []string{"digest-a", "digest-b"} {
			if err := repo.SaveRefreshToken(ctx, d, userID, future); err != nil {
				t.Fatalf("SaveRefreshToken() error = %v", err)
			}
		}
		if ok, _ := repo.IsRefreshTokenValid(ctx, "digest-a"); !ok {
			t.Fatal("fresh token reported invalid")
		}

		if err := repo.InvalidateRefreshToken(ctx, "digest-a"); err != nil {
			t.Fatalf("InvalidateRefreshToken() error = %v", err)
		}
		if ok, _ := repo.IsRefreshTokenValid(ctx, "digest-a"); ok {
			t.Error("revoked token reported valid")
		}
		if ok, _ := repo.IsRefreshTokenValid(ctx, "digest-b"); !ok {
			t.Error("sibling token revoked too early")
		}

		if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
			t.Fatalf("InvalidateAllUserRefreshTokens() error = %v", err)
		}
		if ok, _ := repo.IsRefreshTokenValid(ctx, "digest-b"); ok {
			t.Error("token survived revoke-all")
		}
	})

	t.Run("reset tokens are single use", func(t *testing.T) {
		if err := repo.SavePasswordResetToken(ctx, "reset-1", userID, "ana@loja.com", future); err != nil {
			t.Fatalf("SavePasswordResetToken() error = %v", err)
		}
		got, err := repo.GetPasswordResetToken(ctx, "reset-1")
		if err != nil || got == nil {
			t.Fatalf("GetPasswordResetToken() = %v, %v", got, err)
		}
		if err := repo.InvalidatePasswordResetToken(ctx, "reset-1"); err != nil {
			t.Fatalf("InvalidatePasswordResetToken() error = %v", err)
		}
		if got, _ := repo.GetPasswordResetToken(ctx, "reset-1"); got != nil {
			t.Error("used reset token still returned")
		}
	})

	t.Run("purge drops expired rows", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "old", userID, time.Now().Add(-48*time.Hour)); err != nil {
			t.Fatalf("SaveRefreshToken() error = %v", err)
		}
		removed, err := repo.PurgeExpired(ctx, time.Now().Add(-24*time.Hour))
		if err != nil {
			t.Fatalf("PurgeExpired() error = %v", err)
		}
		if removed != 1 {
			t.Errorf("removed = %d, want 1", removed)
		}
	})
}
