package settings

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// DefaultMaxLogoSize is the logo size limit when none is configured (2 MiB).
const DefaultMaxLogoSize = 2 << 20

// logoExtensions lists the types the PDF renderer can embed.
var logoExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

// UploadLogoInput holds the uploaded file.
type UploadLogoInput struct {
	Data []byte
}

// UploadLogoOutput represents the settings after the upload.
type UploadLogoOutput struct {
	Settings *entity.CompanySettings
}

// UploadLogoUseCase stores the company logo.
type UploadLogoUseCase struct {
	settingsRepo adapter.SettingsRepository
	storage      adapter.ObjectStorage
	maxSize      int64
}

// NewUploadLogoUseCase creates a new UploadLogoUseCase. A non-positive maxSize
// uses DefaultMaxLogoSize.
func NewUploadLogoUseCase(settingsRepo adapter.SettingsRepository, storage adapter.ObjectStorage, maxSize int64) *UploadLogoUseCase {
	if maxSize <= 0 {
		maxSize = DefaultMaxLogoSize
	}
	return &UploadLogoUseCase{
		settingsRepo: settingsRepo,
		storage:      storage,
		maxSize:      maxSize,
	}
}

// MaxSize returns the accepted logo size in bytes.
func (uc *UploadLogoUseCase) MaxSize() int64 {
	return uc.maxSize
}

// Execute validates and stores the logo. The content type is sniffed from the
// bytes, never taken from the client.
func (uc *UploadLogoUseCase) Execute(ctx context.Context, input UploadLogoInput) (*UploadLogoOutput, error) {
	if len(input.Data) == 0 {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeLogoMissing,
			domainerror.ErrLogoMissing.Error(),
			domainerror.ErrLogoMissing,
		)
	}
	if int64(len(input.Data)) > uc.maxSize {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeLogoTooLarge,
			fmt.Sprintf("logo must not exceed %d bytes", uc.maxSize),
			domainerror.ErrLogoTooLarge,
		)
	}

	contentType := http.DetectContentType(input.Data)
	ext, ok := logoExtensions[contentType]
	if !ok {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeLogoUnsupportedType,
			domainerror.ErrLogoUnsupportedType.Error(),
			domainerror.ErrLogoUnsupportedType,
		)
	}

	settings, err := load(ctx, uc.settingsRepo)
	if err != nil {
		return nil, err
	}

	key := "company/logo." + ext
	if err := uc.storage.Put(ctx, key, contentType, input.Data); err != nil {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeLogoStorageFailed,
			"failed to store logo",
			err,
		)
	}

	previous := settings.LogoKey
	settings.LogoKey = key
	settings.LogoContentType = contentType
	settings.UpdatedAt = time.Now().UTC()
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	if previous != "" && previous != key {
		if err := uc.storage.Delete(ctx, previous); err != nil {
			slog.Warn("Failed to delete previous logo", "error", err, "key", previous)
		}
	}

	slog.Info("Company logo uploaded", "key", key, "content_type", contentType, "bytes", len(input.Data))

	return &UploadLogoOutput{Settings: settings}, nil
}
