package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database. The address is
// flattened into address_* columns.
type ClientModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null;index"`
	CPF               string    `gorm:"column:cpf;type:varchar(14)"`
	Email             string    `gorm:"type:varchar(255)"`
	Phone             string    `gorm:"type:varchar(30)"`
	AddressStreet     string    `gorm:"type:varchar(255)"`
	AddressNumber     string    `gorm:"type:varchar(20)"`
	AddressComplement string    `gorm:"type:varchar(100)"`
	AddressDistrict   string    `gorm:"type:varchar(100)"`
	AddressCity       string    `gorm:"type:varchar(100)"`
	AddressState      string    `gorm:"type:varchar(2)"`
	AddressZipCode    string    `gorm:"type:varchar(9)"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:    m.ID,
		Name:  m.Name,
		CPF:   m.CPF,
		Email: m.Email,
		Phone: m.Phone,
		Address: entity.Address{
			Street:     m.AddressStreet,
			Number:     m.AddressNumber,
			Complement: m.AddressComplement,
			District:   m.AddressDistrict,
			City:       m.AddressCity,
			State:      m.AddressState,
			ZipCode:    m.AddressZipCode,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(client *entity.Client) *ClientModel {
	return &ClientModel{
		ID:                client.ID,
		Name:              client.Name,
		CPF:               client.CPF,
		Email:             client.Email,
		Phone:             client.Phone,
		AddressStreet:     client.Address.Street,
		AddressNumber:     client.Address.Number,
		AddressComplement: client.Address.Complement,
		AddressDistrict:   client.Address.District,
		AddressCity:       client.Address.City,
		AddressState:      client.Address.State,
		AddressZipCode:    client.Address.ZipCode,
		CreatedAt:         client.CreatedAt,
		UpdatedAt:         client.UpdatedAt,
	}
}
