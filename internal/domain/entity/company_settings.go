package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCompanyName is used until the company name is configured.
const DefaultCompanyName = "Sistema Financeiro"

// CompanySettings is the singleton company profile printed on reports.
type CompanySettings struct {
	ID              uuid.UUID
	CompanyName     string
	CNPJ            string
	Address         string
	Phone           string
	Email           string
	LogoKey         string
	LogoContentType string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCompanySettings creates settings with the default company name.
func NewCompanySettings() *CompanySettings {
	now := time.Now().UTC()
	return &CompanySettings{
		ID:          uuid.New(),
		CompanyName: DefaultCompanyName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasLogo reports whether a logo was uploaded.
func (c *CompanySettings) HasLogo() bool {
	return c.LogoKey != ""
}
