package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/application/usecase/dataset"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

type memSales struct{ sales []*entity.Sale }

func (m *memSales) Create(context.Context, *entity.Sale) error { return nil }
func (m *memSales) FindByID(context.Context, uuid.UUID) (*entity.Sale, error) {
	return nil, domainerror.ErrSaleNotFound
}
func (m *memSales) FindAll(context.Context) ([]*entity.Sale, error) { return m.sales, nil }
func (m *memSales) FindBetween(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *memSales) Update(context.Context, *entity.Sale) error { return nil }
func (m *memSales) Delete(context.Context, uuid.UUID) error    { return nil }

type memExpenses struct{ expenses []*entity.Expense }

func (m *memExpenses) Create(context.Context, *entity.Expense) error { return nil }
func (m *memExpenses) FindByID(context.Context, uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}
func (m *memExpenses) FindAll(context.Context) ([]*entity.Expense, error) { return m.expenses, nil }
func (m *memExpenses) FindBetween(_ context.Context, from, to time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range m.expenses {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (m *memExpenses) Update(context.Context, *entity.Expense) error { return nil }
func (m *memExpenses) Delete(context.Context, uuid.UUID) error       { return nil }

type memGoals struct{}

func (memGoals) FindByMonth(context.Context, int, int) (*entity.Goal, error) {
	return entity.NewGoal(3, 2024, decimal.NewFromInt(200), 0), nil
}
func (memGoals) Create(context.Context, *entity.Goal) error { return nil }
func (memGoals) Upsert(context.Context, *entity.Goal) error { return nil }

type memSettings struct{ settings *entity.CompanySettings }

func (m *memSettings) Get(context.Context) (*entity.CompanySettings, error) {
	if m.settings == nil {
		return nil, domainerror.ErrSettingsNotFound
	}
	return m.settings, nil
}
func (m *memSettings) Save(_ context.Context, s *entity.CompanySettings) error {
	m.settings = s
	return nil
}

type memStorage struct {
	objects map[string]*adapter.StoredObject
}

func (m *memStorage) Put(_ context.Context, key, contentType string, data []byte) error {
	m.objects[key] = &adapter.StoredObject{Data: data, ContentType: contentType}
	return nil
}
func (m *memStorage) Get(_ context.Context, key string) (*adapter.StoredObject, error) {
	if obj, ok := m.objects[key]; ok {
		return obj, nil
	}
	return nil, domainerror.ErrObjectNotFound
}
func (m *memStorage) Delete(context.Context, string) error { return nil }

type captureRenderer struct {
	bundle *entity.ReportBundle
	err    error
}

func (r *captureRenderer) Format() entity.ReportFormat { return entity.ReportFormatTXT }
func (r *captureRenderer) Render(b *entity.ReportBundle) ([]byte, error) {
	r.bundle = b
	if r.err != nil {
		return nil, r.err
	}
	return []byte("ok"), nil
}

type renderers struct{ r adapter.ReportRenderer }

func (rs renderers) Renderer(format entity.ReportFormat) (adapter.ReportRenderer, error) {
	if format != entity.ReportFormatTXT {
		return nil, domainerror.ErrRendererNotFound
	}
	return rs.r, nil
}

func at(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.UTC) }

func clock() time.Time { return at(2024, time.March, 20) }

func fixtures() (*memSales, *memExpenses) {
	item := func(name string, qty int, price int64) entity.SaleItem {
		return entity.SaleItem{ProductID: uuid.New(), ProductName: name, Quantity: qty, UnitPrice: decimal.NewFromInt(price)}
	}
	sales := &memSales{sales: []*entity.Sale{
		entity.NewSale(at(2024, time.March, 20), "Ana", decimal.Zero, entity.PaymentMethodPIX, entity.SaleStatusSettled, "",
			[]entity.SaleItem{item("Marmita", 2, 25), item("Suco", 1, 50)}),
		entity.NewSale(at(2024, time.January, 10), "Bruno", decimal.Zero, entity.PaymentMethodCash, "", "",
			[]entity.SaleItem{item("Marmita", 1, 100)}),
	}}
	expenses := &memExpenses{expenses: []*entity.Expense{
		entity.NewExpense(at(2024, time.January, 5), "Food", decimal.NewFromInt(30), entity.PaymentMethodPIX, "Mercado"),
		entity.NewExpense(at(2024, time.February, 6), "Transport", decimal.NewFromInt(20), entity.PaymentMethodCash, "Ônibus"),
		entity.NewExpense(at(2024, time.March, 7), "Food", decimal.NewFromInt(50), entity.PaymentMethodPIX, "Feira"),
	}}
	return sales, expenses
}

func newGenerator(settings *memSettings, storage adapter.ObjectStorage) *Generator {
	sales, expenses := fixtures()
	return NewGenerator(dataset.NewLoader(sales, expenses, time.UTC), memGoals{}, settings, storage, Config{CompanyName: "Padaria"}, clock)
}

func summaryValue(t *testing.T, b *entity.ReportBundle, label string) entity.ReportCell {
	t.Helper()
	for _, line := range b.Summary {
		if line.Label == label {
			return line.Value
		}
	}
	t.Fatalf("summary line %q not found", label)
	return entity.ReportCell{}
}

func TestPreview_Sales(t *testing.T) {
	b, err := NewPreviewReportUseCase(newGenerator(&memSettings{}, nil)).Execute(context.Background(), PreviewReportInput{Type: entity.ReportTypeSales})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.CompanyName != "Padaria" || b.Title != "Relatório de Vendas" {
		t.Errorf("unexpected header: %q %q", b.CompanyName, b.Title)
	}
	if got := summaryValue(t, b, "Total de vendas").Amount; !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected total 200, got %s", got)
	}
	if got := summaryValue(t, b, "Vendas de hoje").Amount; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected today 100, got %s", got)
	}
	if got := summaryValue(t, b, "Média mensal").Amount; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected monthly average over 2 months = 100, got %s", got)
	}
	if got := summaryValue(t, b, "Meta do mês").Ratio; got != 50 {
		t.Errorf("expected goal progress 50, got %v", got)
	}

	names := make([]string, len(b.Tables))
	for i, table := range b.Tables {
		names[i] = table.Name
	}
	want := []string{"Vendas", "Itens", "Por entregador", "Por mês"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected tables %v, got %v", want, names)
		}
	}
	if len(b.Tables[1].Rows) != 3 {
		t.Errorf("expected 3 item rows, got %d", len(b.Tables[1].Rows))
	}
	months := b.Tables[3].Rows
	if len(months) != 2 || months[0][0].Date.Month() != time.January {
		t.Errorf("expected month table oldest first, got %+v", months)
	}
	if b.Filters[0].Value.Text != "Nenhum" {
		t.Errorf("expected no-filter line, got %+v", b.Filters)
	}
}

func TestPreview_ExpensesByCategory(t *testing.T) {
	b, err := NewPreviewReportUseCase(newGenerator(&memSettings{}, nil)).Execute(context.Background(), PreviewReportInput{Type: entity.ReportTypeExpenses})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byCategory := b.Tables[1]
	if byCategory.Name != "Por categoria" || len(byCategory.Rows) != 2 {
		t.Fatalf("unexpected category table: %+v", byCategory)
	}
	food := byCategory.Rows[0]
	if food[0].Text != "Food" || !food[1].Amount.Equal(decimal.NewFromInt(80)) || food[2].Ratio != 80 {
		t.Errorf("unexpected Food row: %+v", food)
	}
	if byCategory.Rows[1][2].Ratio != 20 {
		t.Errorf("expected Transport 20%%, got %v", byCategory.Rows[1][2].Ratio)
	}
}

func TestPreview_OverviewSeriesIsZeroFilled(t *testing.T) {
	gen := newGenerator(&memSettings{settings: &entity.CompanySettings{CompanyName: "Doceria"}}, nil)
	b, err := NewPreviewReportUseCase(gen).Execute(context.Background(), PreviewReportInput{Type: entity.ReportTypeOverview})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.CompanyName != "Doceria" {
		t.Errorf("expected settings company name, got %q", b.CompanyName)
	}
	if got := summaryValue(t, b, "Saldo").Amount; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance 100, got %s", got)
	}
	series := b.Tables[0]
	if len(series.Rows) != DefaultLookbackMonths {
		t.Fatalf("expected %d months, got %d", DefaultLookbackMonths, len(series.Rows))
	}
	oct := series.Rows[0]
	if oct[0].Date.Month() != time.October || !oct[1].Amount.IsZero() {
		t.Errorf("expected zero October 2023 first, got %+v", oct)
	}
	feb := series.Rows[4]
	if !feb[3].Amount.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("expected February balance -20, got %s", feb[3].Amount)
	}
}

func TestPreview_FilterLinesAndValidation(t *testing.T) {
	gen := newGenerator(&memSettings{}, nil)
	from := at(2024, time.March, 1)
	b, err := NewPreviewReportUseCase(gen).Execute(context.Background(), PreviewReportInput{
		Type:   entity.ReportTypeSales,
		Filter: aggregation.Filter{DateFrom: &from, PaymentMethod: "pix"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Filters) != 2 || b.Filters[1].Value.Text != "PIX" {
		t.Errorf("unexpected filter lines: %+v", b.Filters)
	}
	if len(b.Tables[0].Rows) != 1 {
		t.Errorf("expected one filtered sale, got %d", len(b.Tables[0].Rows))
	}

	to := at(2024, time.January, 1)
	_, err = NewPreviewReportUseCase(gen).Execute(context.Background(), PreviewReportInput{
		Type:   entity.ReportTypeSales,
		Filter: aggregation.Filter{DateFrom: &from, DateTo: &to},
	})
	var rptErr *domainerror.ReportError
	if !errors.As(err, &rptErr) || rptErr.Code != domainerror.ErrCodeInvalidReportFilter {
		t.Errorf("expected invalid filter, got %v", err)
	}
}

func TestPreview_GoalLineIgnoresDateFilter(t *testing.T) {
	gen := newGenerator(&memSettings{}, nil)
	from, to := at(2024, time.January, 1), at(2024, time.January, 31)

	for _, reportType := range []entity.ReportType{entity.ReportTypeSales, entity.ReportTypeOverview} {
		t.Run(string(reportType), func(t *testing.T) {
			b, err := NewPreviewReportUseCase(gen).Execute(context.Background(), PreviewReportInput{
				Type:   reportType,
				Filter: aggregation.Filter{DateFrom: &from, DateTo: &to},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := summaryValue(t, b, "Meta do mês").Ratio; got != 50 {
				t.Errorf("expected March goal progress 50 under a January filter, got %v", got)
			}
			if got := summaryValue(t, b, "Total de vendas").Amount; !got.Equal(decimal.NewFromInt(100)) {
				t.Errorf("expected only January sales in the total, got %s", got)
			}
		})
	}
}

func TestPreview_OverviewSeriesEndsAtDateTo(t *testing.T) {
	gen := newGenerator(&memSettings{}, nil)
	from, to := at(2023, time.September, 1), at(2024, time.January, 31)

	b, err := NewPreviewReportUseCase(gen).Execute(context.Background(), PreviewReportInput{
		Type:   entity.ReportTypeOverview,
		Filter: aggregation.Filter{DateFrom: &from, DateTo: &to},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := b.Tables[0].Rows
	if len(rows) != DefaultLookbackMonths {
		t.Fatalf("expected %d months, got %d", DefaultLookbackMonths, len(rows))
	}
	last := rows[len(rows)-1]
	if last[0].Date.Month() != time.January || last[0].Date.Year() != 2024 {
		t.Errorf("expected series to end in January 2024, got %v", last[0].Date)
	}
	if !last[1].Amount.Equal(decimal.NewFromInt(100)) || !last[2].Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected January sales 100 and expenses 30, got %s / %s", last[1].Amount, last[2].Amount)
	}
}

func TestExport(t *testing.T) {
	settings := &memSettings{settings: &entity.CompanySettings{CompanyName: "Padaria", LogoKey: "logo/company.png", LogoContentType: "image/png"}}
	storage := &memStorage{objects: map[string]*adapter.StoredObject{
		"logo/company.png": {Data: []byte{0x89, 'P', 'N', 'G'}, ContentType: "image/png"},
	}}

	t.Run("renders with logo", func(t *testing.T) {
		r := &captureRenderer{}
		out, err := NewExportReportUseCase(newGenerator(settings, storage), renderers{r}).Execute(context.Background(), ExportReportInput{
			Type: entity.ReportTypeExpenses, Format: entity.ReportFormatTXT,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out.Data) != "ok" || out.ContentType != "text/plain; charset=utf-8" {
			t.Errorf("unexpected output: %+v", out)
		}
		if len(r.bundle.Logo) != 4 || r.bundle.LogoType != "image/png" {
			t.Errorf("expected logo attached, got %d bytes %q", len(r.bundle.Logo), r.bundle.LogoType)
		}
		if !out.GeneratedAt.Equal(clock()) {
			t.Errorf("unexpected generation time %v", out.GeneratedAt)
		}
	})

	t.Run("missing logo object is ignored", func(t *testing.T) {
		r := &captureRenderer{}
		empty := &memStorage{objects: map[string]*adapter.StoredObject{}}
		if _, err := NewExportReportUseCase(newGenerator(settings, empty), renderers{r}).Execute(context.Background(), ExportReportInput{
			Type: entity.ReportTypeSales, Format: entity.ReportFormatTXT,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.bundle.Logo != nil {
			t.Error("expected no logo")
		}
	})

	t.Run("render failure returns no bytes", func(t *testing.T) {
		r := &captureRenderer{err: errors.New("boom")}
		out, err := NewExportReportUseCase(newGenerator(settings, storage), renderers{r}).Execute(context.Background(), ExportReportInput{
			Type: entity.ReportTypeSales, Format: entity.ReportFormatTXT,
		})
		var rptErr *domainerror.ReportError
		if out != nil || !errors.As(err, &rptErr) || rptErr.Code != domainerror.ErrCodeReportRenderFailed {
			t.Errorf("expected render failure and no output, got %v %v", out, err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewExportReportUseCase(newGenerator(settings, storage), renderers{&captureRenderer{}}).Execute(context.Background(), ExportReportInput{
			Type: entity.ReportTypeSales, Format: entity.ReportFormatPDF,
		})
		var rptErr *domainerror.ReportError
		if !errors.As(err, &rptErr) || rptErr.Code != domainerror.ErrCodeInvalidReportFormat {
			t.Errorf("expected invalid format, got %v", err)
		}
	})
}

func TestParseTypeAndFormat(t *testing.T) {
	if typ, err := ParseType(" Sales "); err != nil || typ != entity.ReportTypeSales {
		t.Errorf("expected sales, got %q %v", typ, err)
	}
	if _, err := ParseType("profit"); !errors.Is(err, domainerror.ErrInvalidReportType) {
		t.Errorf("expected invalid type, got %v", err)
	}
	if f, err := ParseFormat("XLSX"); err != nil || f != entity.ReportFormatXLSX {
		t.Errorf("expected xlsx, got %q %v", f, err)
	}
	if _, err := ParseFormat("csv"); !errors.Is(err, domainerror.ErrInvalidReportFormat) {
		t.Errorf("expected invalid format, got %v", err)
	}
}
