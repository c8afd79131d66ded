package dto

import (
	"time"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for updating company settings.
type UpdateSettingsRequest struct {
	CompanyName string `json:"company_name" binding:"max=150"`
	CNPJ        string `json:"cnpj" binding:"omitempty,max=18"`
	Address     string `json:"address" binding:"omitempty,max=255"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
}

// SettingsResponse represents the company settings in API responses.
type SettingsResponse struct {
	CompanyName string    `json:"company_name"`
	CNPJ        string    `json:"cnpj"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	HasLogo     bool      `json:"has_logo"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToSettingsResponse converts the company settings.
func ToSettingsResponse(s *entity.CompanySettings) SettingsResponse {
	return SettingsResponse{
		CompanyName: s.CompanyName,
		CNPJ:        s.CNPJ,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		HasLogo:     s.HasLogo(),
		UpdatedAt:   s.UpdatedAt,
	}
}
