package dto

import (
	"time"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// AddressDTO represents a postal address in requests and responses.
type AddressDTO struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state" binding:"omitempty,len=2"`
	ZipCode    string `json:"zip_code"`
}

// ClientRequest represents the request body for client creation and update.
type ClientRequest struct {
	Name    string     `json:"name" binding:"required,min=1,max=100"`
	CPF     string     `json:"cpf,omitempty" binding:"omitempty,max=14"`
	Email   string     `json:"email,omitempty"`
	Phone   string     `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address AddressDTO `json:"address"`
}

// ClientResponse represents a single client in API responses.
type ClientResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CPF       string     `json:"cpf"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   AddressDTO `json:"address"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToAddress converts the DTO to the domain address.
func (a AddressDTO) ToAddress() entity.Address {
	return entity.Address{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
	}
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		CPF:   c.CPF,
		Email: c.Email,
		Phone: c.Phone,
		Address: AddressDTO{
			Street:     c.Address.Street,
			Number:     c.Address.Number,
			Complement: c.Address.Complement,
			District:   c.Address.District,
			City:       c.Address.City,
			State:      c.Address.State,
			ZipCode:    c.Address.ZipCode,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientListResponse converts a slice of clients.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = ToClientResponse(c)
	}
	return ClientListResponse{Clients: out}
}
