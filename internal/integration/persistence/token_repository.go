package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

// TokenRepository keeps the server-side state of refresh and reset tokens.
// Every method takes the SHA-256 digest of the token, never the token itself.
type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, digest string, userID uuid.UUID, expiresAt time.Time) error
	// IsRefreshTokenValid is false for unknown, revoked or expired digests.
	IsRefreshTokenValid(ctx context.Context, digest string) (bool, error)
	InvalidateRefreshToken(ctx context.Context, digest string) error
	InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	SavePasswordResetToken(ctx context.Context, digest string, userID uuid.UUID, email string, expiresAt time.Time) error
	// GetPasswordResetToken returns nil when the digest is unknown, used or expired.
	GetPasswordResetToken(ctx context.Context, digest string) (*model.PasswordResetTokenModel, error)
	InvalidatePasswordResetToken(ctx context.Context, digest string) error
	InvalidateUserPasswordResetTokens(ctx context.Context, userID uuid.UUID) error

	// PurgeExpired drops rows of both tables that expired before the cutoff.
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

type tokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *tokenRepository) SaveRefreshToken(ctx context.Context, digest string, userID uuid.UUID, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		TokenHash: digest,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: r.now(),
	}).Error
}

func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, digest string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND invalidated = ? AND expires_at > ?", digest, false, r.now()).
		Count(&n).Error
	return n > 0, err
}

func (r *tokenRepository) InvalidateRefreshToken(ctx context.Context, digest string) error {
	return r.revokeRefresh(ctx, "token_hash = ?", digest)
}

func (r *tokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return r.revokeRefresh(ctx, "user_id = ? AND invalidated = ?", userID, false)
}

func (r *tokenRepository) revokeRefresh(ctx context.Context, query string, args ...any) error {
	return r.db.WithContext(ctx).Model(&model.RefreshTokenModel{}).
		Where(query, args...).
		Update("invalidated", true).Error
}

func (r *tokenRepository) SavePasswordResetToken(ctx context.Context, digest string, userID uuid.UUID, email string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.PasswordResetTokenModel{
		ID:        uuid.New(),
		TokenHash: digest,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedAt: r.now(),
	}).Error
}

func (r *tokenRepository) GetPasswordResetToken(ctx context.Context, digest string) (*model.PasswordResetTokenModel, error) {
	var row model.PasswordResetTokenModel
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND used = ? AND expires_at > ?", digest, false, r.now()).
		First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return &row, nil
}

func (r *tokenRepository) InvalidatePasswordResetToken(ctx context.Context, digest string) error {
	return r.consumeReset(ctx, "token_hash = ?", digest)
}

func (r *tokenRepository) InvalidateUserPasswordResetTokens(ctx context.Context, userID uuid.UUID) error {
	return r.consumeReset(ctx, "user_id = ? AND used = ?", userID, false)
}

func (r *tokenRepository) consumeReset(ctx context.Context, query string, args ...any) error {
	usedAt := r.now()
	return r.db.WithContext(ctx).Model(&model.PasswordResetTokenModel{}).
		Where(query, args...).
		Updates(map[string]any{"used": true, "used_at": &usedAt}).Error
}

func (r *tokenRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&model.RefreshTokenModel{}, &model.PasswordResetTokenModel{}} {
			res := tx.Where("expires_at < ?", before.UTC()).Delete(m)
			if res.Error != nil {
				return res.Error
			}
			removed += res.RowsAffected
		}
		return nil
	})
	return removed, err
}
