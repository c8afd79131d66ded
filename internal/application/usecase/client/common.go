// Package client contains client registry use cases.
package client

import (
	"net/mail"
	"strings"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// ClientFields holds the editable fields of a client.
type ClientFields struct {
	Name    string
	CPF     string
	Email   string
	Phone   string
	Address entity.Address
}

func (f ClientFields) validate() (ClientFields, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.CPF = strings.TrimSpace(f.CPF)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)

	if f.Name == "" {
		return f, domainerror.NewClientError(
			domainerror.ErrCodeClientNameRequired,
			domainerror.ErrClientNameRequired.Error(),
			domainerror.ErrClientNameRequired,
		)
	}
	if f.Email != "" {
		if _, err := mail.ParseAddress(f.Email); err != nil {
			return f, domainerror.NewClientError(
				domainerror.ErrCodeInvalidClientEmail,
				"invalid email format",
				err,
			)
		}
	}
	return f, nil
}

func notFound() error {
	return domainerror.NewClientError(
		domainerror.ErrCodeClientNotFound,
		"client not found",
		domainerror.ErrClientNotFound,
	)
}
