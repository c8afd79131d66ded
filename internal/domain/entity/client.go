package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a Brazilian postal address.
type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	ZipCode    string
}

// Client represents a customer of the business.
type Client struct {
	ID        uuid.UUID
	Name      string
	CPF       string
	Email     string
	Phone     string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new Client entity.
func NewClient(name, cpf, email, phone string, address Address) *Client {
	now := time.Now().UTC()
	return &Client{
		ID:        uuid.New(),
		Name:      name,
		CPF:       cpf,
		Email:     email,
		Phone:     phone,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
