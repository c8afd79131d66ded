package dto

import (
	"strconv"
	"time"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	"github.com/gestao-financeira/backend/internal/integration/export"
)

// ReportQuery represents the query parameters of the report endpoints.
type ReportQuery struct {
	FilterQuery
	Format string `form:"format"`
}

// ReportCellResponse is a typed cell with its raw value and the pt-BR text
// the exported files show.
type ReportCellResponse struct {
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Display string `json:"display"`
}

// ReportLineResponse is a labelled value of the filter or summary block.
type ReportLineResponse struct {
	Label string             `json:"label"`
	Value ReportCellResponse `json:"value"`
}

// ReportColumnResponse describes a table column.
type ReportColumnResponse struct {
	Header string `json:"header"`
	Kind   string `json:"kind"`
}

// ReportTableResponse is one table of a report.
type ReportTableResponse struct {
	Name    string                 `json:"name"`
	Title   string                 `json:"title"`
	Columns []ReportColumnResponse `json:"columns"`
	Rows    [][]ReportCellResponse `json:"rows"`
}

// ReportPreviewResponse represents a report rendered as JSON.
type ReportPreviewResponse struct {
	Type        string                `json:"type"`
	Title       string                `json:"title"`
	CompanyName string                `json:"company_name"`
	GeneratedAt time.Time             `json:"generated_at"`
	HasLogo     bool                  `json:"has_logo"`
	Filters     []ReportLineResponse  `json:"filters"`
	Summary     []ReportLineResponse  `json:"summary"`
	Tables      []ReportTableResponse `json:"tables"`
}

// ToReportCellResponse converts a report cell.
func ToReportCellResponse(cell entity.ReportCell) ReportCellResponse {
	var raw string
	switch cell.Kind {
	case entity.CellKindCurrency:
		raw = cell.Amount.StringFixed(2)
	case entity.CellKindInteger:
		raw = strconv.FormatInt(cell.Number, 10)
	case entity.CellKindPercent:
		raw = strconv.FormatFloat(cell.Ratio, 'f', 2, 64)
	case entity.CellKindDate:
		raw = cell.Date.Format(DateLayout)
	case entity.CellKindMonth:
		raw = cell.Date.Format("2006-01")
	default:
		raw = cell.Text
	}
	return ReportCellResponse{Kind: string(cell.Kind), Value: raw, Display: export.FormatCell(cell)}
}

func toReportLines(lines []entity.ReportLine) []ReportLineResponse {
	out := make([]ReportLineResponse, len(lines))
	for i, l := range lines {
		out[i] = ReportLineResponse{Label: l.Label, Value: ToReportCellResponse(l.Value)}
	}
	return out
}

// ToReportPreviewResponse converts a report bundle.
func ToReportPreviewResponse(bundle *entity.ReportBundle) ReportPreviewResponse {
	tables := make([]ReportTableResponse, len(bundle.Tables))
	for i, t := range bundle.Tables {
		columns := make([]ReportColumnResponse, len(t.Columns))
		for j, c := range t.Columns {
			columns[j] = ReportColumnResponse{Header: c.Header, Kind: string(c.Kind)}
		}
		rows := make([][]ReportCellResponse, len(t.Rows))
		for j, row := range t.Rows {
			cells := make([]ReportCellResponse, len(row))
			for k, cell := range row {
				cells[k] = ToReportCellResponse(cell)
			}
			rows[j] = cells
		}
		tables[i] = ReportTableResponse{Name: t.Name, Title: t.Title, Columns: columns, Rows: rows}
	}
	return ReportPreviewResponse{
		Type:        string(bundle.Type),
		Title:       bundle.Title,
		CompanyName: bundle.CompanyName,
		GeneratedAt: bundle.GeneratedAt,
		HasLogo:     len(bundle.Logo) > 0,
		Filters:     toReportLines(bundle.Filters),
		Summary:     toReportLines(bundle.Summary),
		Tables:      tables,
	}
}
