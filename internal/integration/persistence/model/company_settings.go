package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// CompanySettingsModel represents the company_settings table (a single row).
type CompanySettingsModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName     string    `gorm:"type:varchar(255);not null"`
	CNPJ            string    `gorm:"column:cnpj;type:varchar(18)"`
	Address         string    `gorm:"type:varchar(500)"`
	Phone           string    `gorm:"type:varchar(30)"`
	Email           string    `gorm:"type:varchar(255)"`
	LogoKey         string    `gorm:"type:varchar(255)"`
	LogoContentType string    `gorm:"type:varchar(50)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompanySettingsModel.
func (CompanySettingsModel) TableName() string {
	return "company_settings"
}

// ToEntity converts a CompanySettingsModel to a domain CompanySettings entity.
func (m *CompanySettingsModel) ToEntity() *entity.CompanySettings {
	return &entity.CompanySettings{
		ID:              m.ID,
		CompanyName:     m.CompanyName,
		CNPJ:            m.CNPJ,
		Address:         m.Address,
		Phone:           m.Phone,
		Email:           m.Email,
		LogoKey:         m.LogoKey,
		LogoContentType: m.LogoContentType,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CompanySettingsFromEntity creates a CompanySettingsModel from a domain entity.
func CompanySettingsFromEntity(settings *entity.CompanySettings) *CompanySettingsModel {
	return &CompanySettingsModel{
		ID:              settings.ID,
		CompanyName:     settings.CompanyName,
		CNPJ:            settings.CNPJ,
		Address:         settings.Address,
		Phone:           settings.Phone,
		Email:           settings.Email,
		LogoKey:         settings.LogoKey,
		LogoContentType: settings.LogoContentType,
		CreatedAt:       settings.CreatedAt,
		UpdatedAt:       settings.UpdatedAt,
	}
}
