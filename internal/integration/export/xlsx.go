package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

const (
	summarySheet   = "Resumo"
	currencyFormat = `"R$ "#,##0.00`
	percentFormat  = "0.0%"
	dateFormat     = "dd/mm/yyyy"
	maxSheetName   = 31
)

// xlsxRenderer writes a workbook with a summary sheet and one sheet per table.
type xlsxRenderer struct{}

// NewXLSXRenderer creates the XLSX renderer.
func NewXLSXRenderer() adapter.ReportRenderer {
	return &xlsxRenderer{}
}

func (r *xlsxRenderer) Format() entity.ReportFormat {
	return entity.ReportFormatXLSX
}

func (r *xlsxRenderer) Render(bundle *entity.ReportBundle) (out []byte, err error) {
	defer recoverRender(r.Format(), &out, &err)

	if bundle == nil {
		return nil, errors.New("report bundle is nil")
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newXLSXStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, styles, bundle); err != nil {
		return nil, err
	}

	used := map[string]bool{summarySheet: true}
	for i := range bundle.Tables {
		name := uniqueSheetName(bundle.Tables[i].Name, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		if err := writeTableSheet(f, styles, name, &bundle.Tables[i]); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

type xlsxStyles struct {
	header   int
	bold     int
	currency int
	percent  int
	date     int
}

func newXLSXStyles(f *excelize.File) (*xlsxStyles, error) {
	currency := currencyFormat
	percent := percentFormat
	date := dateFormat

	specs := []*excelize.Style{
		{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"34495E"}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		},
		{Font: &excelize.Font{Bold: true}},
		{CustomNumFmt: &currency},
		{CustomNumFmt: &percent},
		{CustomNumFmt: &date},
	}

	ids := make([]int, len(specs))
	for i, spec := range specs {
		id, err := f.NewStyle(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to create xlsx style: %w", err)
		}
		ids[i] = id
	}

	return &xlsxStyles{header: ids[0], bold: ids[1], currency: ids[2], percent: ids[3], date: ids[4]}, nil
}

func writeSummarySheet(f *excelize.File, styles *xlsxStyles, bundle *entity.ReportBundle) error {
	row := 1
	set := func(col int, value interface{}, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, value); err != nil {
			return err
		}
		if style != 0 {
			return f.SetCellStyle(summarySheet, cell, cell, style)
		}
		return nil
	}

	header := []struct {
		label string
		value string
	}{
		{"Empresa", bundle.CompanyName},
		{"Relatório", bundle.Title},
		{"Gerado em", FormatDateTime(bundle.GeneratedAt)},
	}
	for _, h := range header {
		if h.value == "" {
			continue
		}
		if err := set(1, h.label, styles.bold); err != nil {
			return err
		}
		if err := set(2, h.value, 0); err != nil {
			return err
		}
		row++
	}

	sections := []struct {
		title string
		lines []entity.ReportLine
	}{
		{"Filtros", bundle.Filters},
		{"Resumo", bundle.Summary},
	}
	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}
		row++
		if err := set(1, section.title, styles.bold); err != nil {
			return err
		}
		row++
		for _, line := range section.lines {
			if err := set(1, line.Label, 0); err != nil {
				return err
			}
			value, style := xlsxValue(line.Value, styles)
			if err := set(2, value, style); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 36)
}

func writeTableSheet(f *excelize.File, styles *xlsxStyles, sheet string, table *entity.ReportTable) error {
	for i, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, declaredWidth(col)); err != nil {
			return err
		}
	}

	for r, row := range table.Rows {
		for c := range table.Columns {
			if c >= len(row) {
				break
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			value, style := xlsxValue(row[c], styles)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
			}
			if style != 0 {
				if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// xlsxValue keeps numbers numeric so spreadsheets can sum them.
func xlsxValue(cell entity.ReportCell, styles *xlsxStyles) (interface{}, int) {
	switch cell.Kind {
	case entity.CellKindCurrency:
		return cell.Amount.Round(2).InexactFloat64(), styles.currency
	case entity.CellKindInteger:
		return cell.Number, 0
	case entity.CellKindPercent:
		return cell.Ratio / 100, styles.percent
	case entity.CellKindDate:
		if cell.Date.IsZero() {
			return emptyValue, 0
		}
		return cell.Date, styles.date
	default:
		return FormatCell(cell), 0
	}
}

// uniqueSheetName strips characters Excel rejects, truncates to 31 runes and
// suffixes duplicates.
func uniqueSheetName(name string, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	if clean == "" {
		clean = "Tabela"
	}

	candidate := truncateRunes(clean, maxSheetName)
	for n := 2; used[candidate]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(clean, maxSheetName-len(suffix)) + suffix
	}
	used[candidate] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
