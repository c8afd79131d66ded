package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType identifies a report.
type ReportType string

const (
	ReportTypeSales    ReportType = "sales"
	ReportTypeExpenses ReportType = "expenses"
	ReportTypeOverview ReportType = "overview"
)

// IsValid checks if the report type is supported.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeSales, ReportTypeExpenses, ReportTypeOverview:
		return true
	}
	return false
}

// ReportFormat identifies an export encoding.
type ReportFormat string

const (
	ReportFormatPDF  ReportFormat = "pdf"
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatTXT  ReportFormat = "txt"
)

// IsValid checks if the format is supported.
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportFormatPDF, ReportFormatXLSX, ReportFormatTXT:
		return true
	}
	return false
}

// ContentType returns the MIME type of the format.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatPDF:
		return "application/pdf"
	case ReportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// CellKind tells renderers how to format a cell.
type CellKind string

const (
	CellKindText     CellKind = "text"
	CellKindCurrency CellKind = "currency"
	CellKindInteger  CellKind = "integer"
	CellKindPercent  CellKind = "percent"
	CellKindDate     CellKind = "date"
	CellKindMonth    CellKind = "month"
)

// ReportCell is a single typed value. Only the field matching Kind is meaningful.
type ReportCell struct {
	Kind   CellKind
	Text   string
	Amount decimal.Decimal // currency
	Number int64           // integer
	Ratio  float64         // percent, 0-100
	Date   time.Time       // date; first day of the month for month cells
}

// TextCell builds a text cell.
func TextCell(text string) ReportCell {
	return ReportCell{Kind: CellKindText, Text: text}
}

// CurrencyCell builds a currency cell.
func CurrencyCell(amount decimal.Decimal) ReportCell {
	return ReportCell{Kind: CellKindCurrency, Amount: amount}
}

// IntegerCell builds an integer cell.
func IntegerCell(n int64) ReportCell {
	return ReportCell{Kind: CellKindInteger, Number: n}
}

// PercentCell builds a percentage cell.
func PercentCell(ratio float64) ReportCell {
	return ReportCell{Kind: CellKindPercent, Ratio: ratio}
}

// DateCell builds a date cell.
func DateCell(date time.Time) ReportCell {
	return ReportCell{Kind: CellKindDate, Date: date}
}

// MonthCell builds a calendar-month cell.
func MonthCell(month, year int) ReportCell {
	return ReportCell{Kind: CellKindMonth, Date: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)}
}

// ReportColumn describes a table column. Width is in spreadsheet character units.
type ReportColumn struct {
	Header string
	Kind   CellKind
	Width  float64
}

// ReportTable is one logical table of a report (one XLSX sheet, one PDF table).
type ReportTable struct {
	Name    string
	Title   string
	Columns []ReportColumn
	Rows    [][]ReportCell
}

// AddRow appends a row to the table.
func (t *ReportTable) AddRow(cells ...ReportCell) {
	t.Rows = append(t.Rows, cells)
}

// ReportLine is a labelled value in the header or summary block.
type ReportLine struct {
	Label string
	Value ReportCell
}

// ReportBundle is an aggregation result shaped for the report formatter.
type ReportBundle struct {
	Type        ReportType
	Title       string
	CompanyName string
	GeneratedAt time.Time
	Filters     []ReportLine
	Summary     []ReportLine
	Tables      []ReportTable
	Logo        []byte
	LogoType    string
}
