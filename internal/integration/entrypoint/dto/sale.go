package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/usecase/sale"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// SaleItemRequest represents a line item in sale requests.
type SaleItemRequest struct {
	ProductID string           `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// SaleRequest represents the request body for sale creation and update.
type SaleRequest struct {
	Date          string            `json:"date" binding:"required"`
	Payee         string            `json:"payee" binding:"max=255"`
	Value         *decimal.Decimal  `json:"value,omitempty"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Status        string            `json:"status,omitempty"`
	Note          string            `json:"note,omitempty" binding:"omitempty,max=1000"`
	Items         []SaleItemRequest `json:"items" binding:"dive"`
}

// SaleItemResponse represents a line item in API responses.
type SaleItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID                 string             `json:"id"`
	Date               string             `json:"date"`
	Payee              string             `json:"payee"`
	Value              string             `json:"value"`
	ItemsTotal         string             `json:"items_total"`
	UnitsSold          int                `json:"units_sold"`
	PaymentMethod      string             `json:"payment_method"`
	PaymentMethodLabel string             `json:"payment_method_label"`
	Status             string             `json:"status"`
	StatusLabel        string             `json:"status_label"`
	Note               string             `json:"note"`
	Items              []SaleItemResponse `json:"items"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// IntegrityWarningResponse flags a sale whose declared value disagrees with its items.
type IntegrityWarningResponse struct {
	SaleID   string `json:"sale_id"`
	Declared string `json:"declared"`
	Derived  string `json:"derived"`
}

// SaleDetailResponse wraps a sale with its integrity warnings.
type SaleDetailResponse struct {
	Sale     SaleResponse               `json:"sale"`
	Warnings []IntegrityWarningResponse `json:"warnings"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales    []SaleResponse             `json:"sales"`
	Total    string                     `json:"total"`
	Units    int                        `json:"units"`
	Count    int                        `json:"count"`
	Warnings []IntegrityWarningResponse `json:"warnings"`
}

// MonthTotalResponse is one point of a monthly sales series.
type MonthTotalResponse struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Total string `json:"total"`
	Count int    `json:"count"`
	Units int    `json:"units"`
}

// MonthUnitsResponse is one point of a monthly units series.
type MonthUnitsResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Units int `json:"units"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Subtotal:    item.Subtotal().StringFixed(2),
		}
	}
	return SaleResponse{
		ID:                 s.ID.String(),
		Date:               s.Date.Format(DateLayout),
		Payee:              s.Payee,
		Value:              s.Value.StringFixed(2),
		ItemsTotal:         s.ItemsTotal().StringFixed(2),
		UnitsSold:          s.UnitsSold(),
		PaymentMethod:      string(s.PaymentMethod),
		PaymentMethodLabel: s.PaymentMethod.Label(),
		Status:             string(s.Status),
		StatusLabel:        s.Status.Label(),
		Note:               s.Note,
		Items:              items,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// ToIntegrityWarnings converts engine warnings to DTOs.
func ToIntegrityWarnings(warnings []aggregation.IntegrityWarning) []IntegrityWarningResponse {
	out := make([]IntegrityWarningResponse, len(warnings))
	for i, w := range warnings {
		out[i] = IntegrityWarningResponse{
			SaleID:   w.RecordID,
			Declared: w.Declared.StringFixed(2),
			Derived:  w.Derived.StringFixed(2),
		}
	}
	return out
}

// ToSaleDetailResponse converts a sale and its warnings.
func ToSaleDetailResponse(s *entity.Sale, warnings []aggregation.IntegrityWarning) SaleDetailResponse {
	return SaleDetailResponse{Sale: ToSaleResponse(s), Warnings: ToIntegrityWarnings(warnings)}
}

// ToSaleListResponse converts the list use case output.
func ToSaleListResponse(output *sale.ListSalesOutput) SaleListResponse {
	sales := make([]SaleResponse, len(output.Sales))
	for i, s := range output.Sales {
		sales[i] = ToSaleResponse(s)
	}
	return SaleListResponse{
		Sales:    sales,
		Total:    output.Total.StringFixed(2),
		Units:    output.Units,
		Count:    len(sales),
		Warnings: ToIntegrityWarnings(output.Warnings),
	}
}

// ToMonthTotalResponses converts a monthly series.
func ToMonthTotalResponses(points []aggregation.MonthTotal) []MonthTotalResponse {
	out := make([]MonthTotalResponse, len(points))
	for i, p := range points {
		out[i] = MonthTotalResponse{Month: p.Month, Year: p.Year, Total: p.Total.StringFixed(2), Count: p.Count, Units: p.Units}
	}
	return out
}

// ToMonthUnitsResponses converts a monthly units series.
func ToMonthUnitsResponses(points []aggregation.MonthUnits) []MonthUnitsResponse {
	out := make([]MonthUnitsResponse, len(points))
	for i, p := range points {
		out[i] = MonthUnitsResponse{Month: p.Month, Year: p.Year, Units: p.Units}
	}
	return out
}
