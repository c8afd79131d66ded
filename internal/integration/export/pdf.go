package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

const (
	pdfFont         = "Helvetica"
	pdfMargin       = 12.0
	pdfBottomMargin = 15.0
	pdfRowHeight    = 6.5
	pdfLogoWidth    = 24.0
	pdfDefaultWidth = 12.0
	pdfLogoName     = "company-logo"
)

// pdfRenderer writes an A4 portrait report with auto-paginated tables.
type pdfRenderer struct {
	compress bool
}

// NewPDFRenderer creates the PDF renderer.
func NewPDFRenderer() adapter.ReportRenderer {
	return &pdfRenderer{compress: true}
}

func (r *pdfRenderer) Format() entity.ReportFormat {
	return entity.ReportFormatPDF
}

func (r *pdfRenderer) Render(bundle *entity.ReportBundle) (out []byte, err error) {
	defer recoverRender(r.Format(), &out, &err)

	if bundle == nil {
		return nil, errors.New("report bundle is nil")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfBottomMargin)
	pdf.AliasNbPages("")
	pdf.SetTitle(bundle.Title, true)
	pdf.SetCreator(bundle.CompanyName, true)

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfBottomMargin + 3)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat(0, 5, w.tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	w.header(bundle)
	w.lines("Filtros", bundle.Filters)
	w.lines("Resumo", bundle.Summary)
	for i := range bundle.Tables {
		w.table(&bundle.Tables[i])
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) header(bundle *entity.ReportBundle) {
	left, top, _, _ := w.pdf.GetMargins()
	textX := left
	if w.logo(bundle, left, top) {
		textX = left + pdfLogoWidth + 4
	}

	w.pdf.SetXY(textX, top)
	if bundle.CompanyName != "" {
		w.pdf.SetFont(pdfFont, "B", 14)
		w.pdf.CellFormat(0, 7, w.tr(bundle.CompanyName), "", 1, "L", false, 0, "")
		w.pdf.SetX(textX)
	}
	w.pdf.SetFont(pdfFont, "B", 12)
	w.pdf.CellFormat(0, 7, w.tr(bundle.Title), "", 1, "L", false, 0, "")
	w.pdf.SetX(textX)
	w.pdf.SetFont(pdfFont, "", 9)
	w.pdf.CellFormat(0, 5, w.tr("Gerado em: "+FormatDateTime(bundle.GeneratedAt)), "", 1, "L", false, 0, "")

	if textX != left && w.pdf.GetY() < top+pdfLogoWidth {
		w.pdf.SetY(top + pdfLogoWidth)
	}
	w.pdf.Ln(4)
}

// logo draws the company logo; unsupported or corrupt images are skipped.
func (w *pdfWriter) logo(bundle *entity.ReportBundle, x, y float64) bool {
	if len(bundle.Logo) == 0 {
		return false
	}

	var imageType string
	switch bundle.LogoType {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg":
		imageType = "JPG"
	default:
		return false
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	info := w.pdf.RegisterImageOptionsReader(pdfLogoName, opts, bytes.NewReader(bundle.Logo))
	if w.pdf.Err() || info == nil {
		slog.Warn("Skipping unreadable company logo in pdf report", "error", w.pdf.Error())
		w.pdf.ClearError()
		return false
	}

	w.pdf.ImageOptions(pdfLogoName, x, y, pdfLogoWidth, 0, false, opts, 0, "")
	return true
}

func (w *pdfWriter) lines(title string, lines []entity.ReportLine) {
	if len(lines) == 0 {
		return
	}

	w.ensureSpace(pdfRowHeight * 2)
	w.pdf.SetFont(pdfFont, "B", 11)
	w.pdf.CellFormat(0, 7, w.tr(title), "", 1, "L", false, 0, "")

	for _, line := range lines {
		w.ensureSpace(5.5)
		w.pdf.SetFont(pdfFont, "", 9)
		w.pdf.CellFormat(60, 5.5, w.tr(line.Label), "", 0, "L", false, 0, "")
		w.pdf.SetFont(pdfFont, "B", 9)
		w.pdf.CellFormat(0, 5.5, w.tr(FormatCell(line.Value)), "", 1, "L", false, 0, "")
	}
	w.pdf.Ln(3)
}

func (w *pdfWriter) table(table *entity.ReportTable) {
	widths := w.columnWidths(table.Columns)

	w.ensureSpace(pdfRowHeight * 3)
	w.pdf.SetFont(pdfFont, "B", 11)
	w.pdf.CellFormat(0, 8, w.tr(table.Title), "", 1, "L", false, 0, "")
	w.tableHeader(table.Columns, widths)

	w.pdf.SetFillColor(245, 245, 245)
	for i, row := range table.Rows {
		if w.needsBreak(pdfRowHeight) {
			w.pdf.AddPage()
			w.tableHeader(table.Columns, widths)
			w.pdf.SetFillColor(245, 245, 245)
		}

		w.pdf.SetFont(pdfFont, "", 8.5)
		for j, col := range table.Columns {
			text := ""
			if j < len(row) {
				text = FormatCell(row[j])
			}
			w.pdf.CellFormat(widths[j], pdfRowHeight, w.fit(text, widths[j]), "1", 0, alignFor(col.Kind), i%2 == 1, 0, "")
		}
		w.pdf.Ln(-1)
	}

	if len(table.Rows) == 0 {
		w.pdf.SetFont(pdfFont, "I", 8.5)
		w.pdf.CellFormat(0, pdfRowHeight, w.tr("Nenhum registro"), "1", 1, "C", false, 0, "")
	}
	w.pdf.Ln(5)
}

func (w *pdfWriter) tableHeader(columns []entity.ReportColumn, widths []float64) {
	w.pdf.SetFont(pdfFont, "B", 8.5)
	w.pdf.SetFillColor(52, 73, 94)
	w.pdf.SetTextColor(255, 255, 255)
	for i, col := range columns {
		w.pdf.CellFormat(widths[i], pdfRowHeight+0.5, w.fit(col.Header, widths[i]), "1", 0, "C", true, 0, "")
	}
	w.pdf.Ln(-1)
	w.pdf.SetTextColor(0, 0, 0)
}

// columnWidths spreads the printable width proportionally to the declared column widths.
func (w *pdfWriter) columnWidths(columns []entity.ReportColumn) []float64 {
	pageWidth, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	available := pageWidth - left - right

	total := 0.0
	for _, col := range columns {
		total += declaredWidth(col)
	}

	widths := make([]float64, len(columns))
	for i, col := range columns {
		widths[i] = available * declaredWidth(col) / total
	}
	return widths
}

// fit translates s to the core-font encoding and truncates it to the cell width.
func (w *pdfWriter) fit(s string, width float64) string {
	text := w.tr(s)
	limit := width - 2
	if w.pdf.GetStringWidth(text) <= limit {
		return text
	}
	for len(text) > 0 && w.pdf.GetStringWidth(text+"...") > limit {
		text = text[:len(text)-1]
	}
	return text + "..."
}

func (w *pdfWriter) needsBreak(height float64) bool {
	_, pageHeight := w.pdf.GetPageSize()
	return w.pdf.GetY()+height > pageHeight-pdfBottomMargin
}

func (w *pdfWriter) ensureSpace(height float64) {
	if w.needsBreak(height) {
		w.pdf.AddPage()
	}
}

func declaredWidth(col entity.ReportColumn) float64 {
	if col.Width <= 0 {
		return pdfDefaultWidth
	}
	return col.Width
}

func alignFor(kind entity.CellKind) string {
	switch kind {
	case entity.CellKindCurrency, entity.CellKindInteger, entity.CellKindPercent:
		return "R"
	case entity.CellKindDate, entity.CellKindMonth:
		return "C"
	default:
		return "L"
	}
}
