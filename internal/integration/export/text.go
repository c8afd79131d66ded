package export

import (
	"bytes"
	"errors"
	"strings"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// textRenderer writes a UTF-8 plain-text report with tab-separated tables.
type textRenderer struct{}

// NewTextRenderer creates the TXT renderer.
func NewTextRenderer() adapter.ReportRenderer {
	return &textRenderer{}
}

func (r *textRenderer) Format() entity.ReportFormat {
	return entity.ReportFormatTXT
}

func (r *textRenderer) Render(bundle *entity.ReportBundle) (out []byte, err error) {
	defer recoverRender(r.Format(), &out, &err)

	if bundle == nil {
		return nil, errors.New("report bundle is nil")
	}

	var buf bytes.Buffer

	if bundle.CompanyName != "" {
		buf.WriteString(bundle.CompanyName + "\n")
	}
	buf.WriteString(bundle.Title + "\n")
	buf.WriteString("Gerado em: " + FormatDateTime(bundle.GeneratedAt) + "\n")

	if len(bundle.Filters) > 0 {
		buf.WriteString("\nFiltros\n")
		writeTextLines(&buf, bundle.Filters)
	}

	if len(bundle.Summary) > 0 {
		buf.WriteString("\nResumo\n")
		writeTextLines(&buf, bundle.Summary)
	}

	for _, table := range bundle.Tables {
		buf.WriteString("\n" + table.Title + "\n")

		headers := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			headers[i] = sanitizeField(col.Header)
		}
		buf.WriteString(strings.Join(headers, "\t") + "\n")

		for _, row := range table.Rows {
			fields := make([]string, len(row))
			for i, cell := range row {
				fields[i] = sanitizeField(FormatCell(cell))
			}
			buf.WriteString(strings.Join(fields, "\t") + "\n")
		}
	}

	return buf.Bytes(), nil
}

func writeTextLines(buf *bytes.Buffer, lines []entity.ReportLine) {
	for _, line := range lines {
		buf.WriteString(line.Label + ": " + FormatCell(line.Value) + "\n")
	}
}

// sanitizeField keeps a field on one line and out of the column separator.
func sanitizeField(s string) string {
	return strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
