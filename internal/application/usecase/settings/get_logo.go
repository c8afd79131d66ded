package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// GetLogoOutput is the stored logo.
type GetLogoOutput struct {
	Data        []byte
	ContentType string
}

// GetLogoUseCase reads the company logo back from object storage.
type GetLogoUseCase struct {
	settingsRepo adapter.SettingsRepository
	storage      adapter.ObjectStorage
}

// NewGetLogoUseCase creates a new GetLogoUseCase instance.
func NewGetLogoUseCase(settingsRepo adapter.SettingsRepository, storage adapter.ObjectStorage) *GetLogoUseCase {
	return &GetLogoUseCase{
		settingsRepo: settingsRepo,
		storage:      storage,
	}
}

// Execute loads the logo.
func (uc *GetLogoUseCase) Execute(ctx context.Context) (*GetLogoOutput, error) {
	settings, err := load(ctx, uc.settingsRepo)
	if err != nil {
		return nil, err
	}
	if !settings.HasLogo() {
		return nil, logoNotFound(nil)
	}

	obj, err := uc.storage.Get(ctx, settings.LogoKey)
	if err != nil {
		if errors.Is(err, domainerror.ErrObjectNotFound) {
			return nil, logoNotFound(err)
		}
		return nil, fmt.Errorf("failed to read logo: %w", err)
	}

	contentType := settings.LogoContentType
	if contentType == "" {
		contentType = obj.ContentType
	}
	return &GetLogoOutput{Data: obj.Data, ContentType: contentType}, nil
}

func logoNotFound(err error) error {
	if err == nil {
		err = domainerror.ErrLogoNotFound
	}
	return domainerror.NewSettingsError(
		domainerror.ErrCodeLogoNotFound,
		domainerror.ErrLogoNotFound.Error(),
		err,
	)
}
