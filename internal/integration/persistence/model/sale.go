// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date          time.Time       `gorm:"not null;index"`
	Payee         string          `gorm:"type:varchar(255);index"`
	Value         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Note          string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Items []SaleItemModel `gorm:"foreignKey:SaleID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel represents the sale_items table in the database.
type SaleItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null;default:0"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName returns the table name for the SaleItemModel.
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToEntity converts a SaleModel to a domain Sale entity. Items keep their stored position.
func (m *SaleModel) ToEntity() *entity.Sale {
	items := make([]entity.SaleItem, len(m.Items))
	for i, item := range m.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items[i] = entity.SaleItem{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return &entity.Sale{
		ID:            m.ID,
		Date:          m.Date,
		Payee:         m.Payee,
		Value:         m.Value,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Status:        entity.SaleStatus(m.Status),
		Note:          m.Note,
		Items:         items,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	items := make([]SaleItemModel, len(sale.Items))
	for i, item := range sale.Items {
		id := item.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		items[i] = SaleItemModel{
			ID:        id,
			SaleID:    sale.ID,
			ProductID: item.ProductID,
			Position:  i,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return &SaleModel{
		ID:            sale.ID,
		Date:          sale.Date.UTC(),
		Payee:         sale.Payee,
		Value:         sale.Value,
		PaymentMethod: string(sale.PaymentMethod),
		Status:        string(sale.Status),
		Note:          sale.Note,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
		Items:         items,
	}
}
