package entity

import "strings"

// PaymentMethod represents how a sale or expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPIX        PaymentMethod = "pix"
	PaymentMethodTransfer   PaymentMethod = "transfer"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCash:       "Dinheiro",
	PaymentMethodCreditCard: "Cartão de Crédito",
	PaymentMethodDebitCard:  "Cartão de Débito",
	PaymentMethodPIX:        "PIX",
	PaymentMethodTransfer:   "Transferência",
}

// IsValid checks if the payment method is one of the supported values.
func (p PaymentMethod) IsValid() bool {
	_, ok := paymentMethodLabels[p]
	return ok
}

// Label returns the pt-BR display name of the payment method.
// Unknown values are returned as-is.
func (p PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[p]; ok {
		return label
	}
	return string(p)
}

// ParsePaymentMethod accepts either the code ("credit_card") or the pt-BR label
// ("Cartão de Crédito"), case-insensitively.
func ParsePaymentMethod(value string) (PaymentMethod, bool) {
	value = strings.TrimSpace(value)
	for method, label := range paymentMethodLabels {
		if strings.EqualFold(value, string(method)) || strings.EqualFold(value, label) {
			return method, true
		}
	}
	return "", false
}

// SaleStatus represents the delivery/settlement state of a sale.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusDelivered SaleStatus = "delivered"
	SaleStatusSettled   SaleStatus = "settled"
)

var saleStatusLabels = map[SaleStatus]string{
	SaleStatusPending:   "Pendente",
	SaleStatusDelivered: "Entregue",
	SaleStatusSettled:   "Acertado",
}

// IsValid checks if the status is one of the supported values.
func (s SaleStatus) IsValid() bool {
	_, ok := saleStatusLabels[s]
	return ok
}

// Label returns the pt-BR display name of the status.
func (s SaleStatus) Label() string {
	if label, ok := saleStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseSaleStatus accepts either the code or the pt-BR label, case-insensitively.
func ParseSaleStatus(value string) (SaleStatus, bool) {
	value = strings.TrimSpace(value)
	for status, label := range saleStatusLabels {
		if strings.EqualFold(value, string(status)) || strings.EqualFold(value, label) {
			return status, true
		}
	}
	return "", false
}
