package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

var payees = []string{"Ana Entregas", "Bruno Motos", "Carla Express"}

func salesBundle() *entity.ReportBundle {
	table := entity.ReportTable{
		Name:  "Vendas",
		Title: "Vendas",
		Columns: []entity.ReportColumn{
			{Header: "Data", Kind: entity.CellKindDate, Width: 12},
			{Header: "Entregador", Kind: entity.CellKindText, Width: 24},
			{Header: "Valor", Kind: entity.CellKindCurrency, Width: 14},
		},
	}
	for i, payee := range payees {
		table.AddRow(
			entity.DateCell(time.Date(2024, time.January, 10+i, 0, 0, 0, 0, time.UTC)),
			entity.TextCell(payee),
			entity.CurrencyCell(decimal.NewFromInt(int64(100*(i+1)))),
		)
	}

	return &entity.ReportBundle{
		Type:        entity.ReportTypeSales,
		Title:       "Relatorio de Vendas",
		CompanyName: "Padaria Central",
		GeneratedAt: time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC),
		Filters:     []entity.ReportLine{{Label: "Status", Value: entity.TextCell("Entregue")}},
		Summary:     []entity.ReportLine{{Label: "Total", Value: entity.CurrencyCell(decimal.NewFromInt(600))}},
		Tables:      []entity.ReportTable{table},
	}
}

func TestRenderers_SameRowsInSameOrder(t *testing.T) {
	bundle := salesBundle()

	t.Run("txt", func(t *testing.T) {
		out, err := NewTextRenderer().Render(bundle)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := string(out)

		if !strings.Contains(text, "Data\tEntregador\tValor\n") {
			t.Errorf("missing tab-separated header row:\n%s", text)
		}
		for i, payee := range payees {
			line := FormatDate(time.Date(2024, time.January, 10+i, 0, 0, 0, 0, time.UTC)) + "\t" + payee + "\t" +
				FormatCurrency(decimal.NewFromInt(int64(100*(i+1))))
			if !strings.Contains(text, line+"\n") {
				t.Errorf("missing row %q", line)
			}
		}
		if !strings.Contains(text, "10/01/2024\tAna Entregas\tR$ 100,00\n") {
			t.Errorf("expected first row formatted as R$ 100,00:\n%s", text)
		}
		assertOrdered(t, text, payees)
	})

	t.Run("pdf", func(t *testing.T) {
		renderer := &pdfRenderer{compress: false}
		out, err := renderer.Render(bundle)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF-")) {
			t.Fatalf("output is not a pdf")
		}
		content := string(out)
		if !strings.Contains(content, "R$ 100,00") {
			t.Error("expected R$ 100,00 in the pdf content stream")
		}
		assertOrdered(t, content, payees)
	})

	t.Run("xlsx", func(t *testing.T) {
		out, err := NewXLSXRenderer().Render(bundle)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f, err := excelize.OpenReader(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("failed to open workbook: %v", err)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) != 2 || sheets[0] != "Resumo" || sheets[1] != "Vendas" {
			t.Fatalf("unexpected sheets: %v", sheets)
		}

		rows, err := f.GetRows("Vendas", excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("failed to read rows: %v", err)
		}
		if len(rows) != len(payees)+1 {
			t.Fatalf("expected %d rows, got %d", len(payees)+1, len(rows))
		}
		if rows[0][1] != "Entregador" {
			t.Errorf("unexpected header: %v", rows[0])
		}
		for i, payee := range payees {
			if rows[i+1][1] != payee {
				t.Errorf("row %d: expected %q, got %q", i+1, payee, rows[i+1][1])
			}
		}
		if rows[1][2] != "100" {
			t.Errorf("expected numeric currency value 100, got %q", rows[1][2])
		}
	})
}

func TestRenderers_NilBundle(t *testing.T) {
	for _, renderer := range []interface {
		Render(*entity.ReportBundle) ([]byte, error)
	}{NewTextRenderer(), NewPDFRenderer(), NewXLSXRenderer()} {
		out, err := renderer.Render(nil)
		if err == nil || out != nil {
			t.Errorf("expected error and no output, got %v / %d bytes", err, len(out))
		}
	}
}

func TestRenderers_EmptyTables(t *testing.T) {
	bundle := &entity.ReportBundle{
		Type:        entity.ReportTypeExpenses,
		Title:       "Despesas",
		GeneratedAt: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Tables: []entity.ReportTable{{
			Name:    "Despesas",
			Title:   "Despesas",
			Columns: []entity.ReportColumn{{Header: "Categoria", Kind: entity.CellKindText}},
		}},
	}

	for _, renderer := range NewDefaultRegistry().renderers {
		out, err := renderer.Render(bundle)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", renderer.Format(), err)
		}
		if len(out) == 0 {
			t.Errorf("%s: expected a file", renderer.Format())
		}
	}
}

func TestXLSX_UniqueSheetNames(t *testing.T) {
	used := map[string]bool{"Resumo": true}

	if got := uniqueSheetName("Por mês", used); got != "Por mês" {
		t.Errorf("unexpected name %q", got)
	}
	if got := uniqueSheetName("Por mês", used); got != "Por mês (2)" {
		t.Errorf("expected suffixed duplicate, got %q", got)
	}
	if got := uniqueSheetName("a/b:c", used); got != "a-b-c" {
		t.Errorf("expected invalid characters replaced, got %q", got)
	}
	long := strings.Repeat("x", 40)
	if got := uniqueSheetName(long, used); len([]rune(got)) != 31 {
		t.Errorf("expected 31 runes, got %d", len([]rune(got)))
	}
}

func TestRegistry(t *testing.T) {
	registry := NewDefaultRegistry()

	for _, format := range []entity.ReportFormat{entity.ReportFormatPDF, entity.ReportFormatXLSX, entity.ReportFormatTXT} {
		renderer, err := registry.Renderer(format)
		if err != nil {
			t.Fatalf("expected renderer for %s: %v", format, err)
		}
		if renderer.Format() != format {
			t.Errorf("expected %s, got %s", format, renderer.Format())
		}
	}

	if _, err := registry.Renderer("csv"); !errors.Is(err, domainerror.ErrRendererNotFound) {
		t.Errorf("expected ErrRendererNotFound, got %v", err)
	}
}

type panickingRenderer struct{}

func (panickingRenderer) Format() entity.ReportFormat { return "boom" }

func (p panickingRenderer) Render(*entity.ReportBundle) (out []byte, err error) {
	defer recoverRender(p.Format(), &out, &err)
	out = []byte("partial")
	panic("library failure")
}

func TestRecoverRender(t *testing.T) {
	out, err := panickingRenderer{}.Render(&entity.ReportBundle{})
	if err == nil {
		t.Fatal("expected an error from a panicking renderer")
	}
	if out != nil {
		t.Errorf("expected no partial output, got %q", out)
	}
}

func assertOrdered(t *testing.T, haystack string, needles []string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		idx := strings.Index(haystack, n)
		if idx < 0 {
			t.Errorf("missing %q", n)
			continue
		}
		if idx < last {
			t.Errorf("%q appears out of order", n)
		}
		last = idx
	}
}
