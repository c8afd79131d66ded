package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// DateLayout is the calendar-day format used in requests and responses.
const DateLayout = "2006-01-02"

// FilterQuery represents the record filter shared by list, dashboard and report endpoints.
type FilterQuery struct {
	DateFrom      string `form:"date_from"`
	DateTo        string `form:"date_to"`
	Category      string `form:"category"`
	PaymentMethod string `form:"payment_method"`
	Status        string `form:"status"`
	ValueMin      string `form:"value_min"`
	ValueMax      string `form:"value_max"`
	Payee         string `form:"payee"`
}

// ToFilter validates the query and converts it to an engine filter. Dates are
// calendar days in loc; payment method and status accept codes or pt-BR labels.
func (q FilterQuery) ToFilter(loc *time.Location) (aggregation.Filter, error) {
	if loc == nil {
		loc = time.UTC
	}
	f := aggregation.Filter{
		Category: strings.TrimSpace(q.Category),
		Payee:    strings.TrimSpace(q.Payee),
	}

	var err error
	if f.DateFrom, err = parseDay(q.DateFrom, loc); err != nil {
		return f, err
	}
	if f.DateTo, err = parseDay(q.DateTo, loc); err != nil {
		return f, err
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateTo.Before(*f.DateFrom) {
		return f, domainerror.ErrInvalidDateRange
	}

	if raw := strings.TrimSpace(q.PaymentMethod); raw != "" {
		method, ok := entity.ParsePaymentMethod(raw)
		if !ok {
			return f, domainerror.ErrInvalidPaymentMethod
		}
		f.PaymentMethod = string(method)
	}
	if raw := strings.TrimSpace(q.Status); raw != "" {
		status, ok := entity.ParseSaleStatus(raw)
		if !ok {
			return f, domainerror.ErrInvalidSaleStatus
		}
		f.Status = string(status)
	}

	if f.ValueMin, err = parseAmount("value_min", q.ValueMin); err != nil {
		return f, err
	}
	if f.ValueMax, err = parseAmount("value_max", q.ValueMax); err != nil {
		return f, err
	}
	if f.ValueMin != nil && f.ValueMax != nil && f.ValueMax.LessThan(*f.ValueMin) {
		return f, fmt.Errorf("value_max must not be below value_min")
	}

	return f, nil
}

// DateRange returns only the date bounds of the query.
func (q FilterQuery) DateRange(loc *time.Location) (from, to *time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	if from, err = parseDay(q.DateFrom, loc); err != nil {
		return nil, nil, err
	}
	if to, err = parseDay(q.DateTo, loc); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseDay(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return nil, domainerror.ErrInvalidDateFormat
	}
	return &day, nil
}

func parseAmount(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &amount, nil
}

// ParseRequestDate parses a request body date, accepting the same layouts as
// imported records. ok is false when the value is empty or unparseable.
func ParseRequestDate(raw string) (time.Time, bool) {
	date := aggregation.ParseDate(raw)
	return date, !date.IsZero()
}
