package sale

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	if s, ok := r.sales[id]; ok {
		return s, nil
	}
	return nil, domainerror.ErrSaleNotFound
}

func (r *fakeSaleRepo) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	return r.FindBetween(ctx, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
}

func (r *fakeSaleRepo) FindBetween(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0)
	for _, s := range r.sales {
		if !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, s *entity.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return domainerror.ErrSaleNotFound
	}
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.sales[id]; !ok {
		return domainerror.ErrSaleNotFound
	}
	delete(r.sales, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, domainerror.ErrProductNotFound
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	out := make(map[uuid.UUID]*entity.Product)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func saleCode(t *testing.T, err error) domainerror.SaleErrorCode {
	t.Helper()
	var saleErr *domainerror.SaleError
	if !errors.As(err, &saleErr) {
		t.Fatalf("expected SaleError, got %v", err)
	}
	return saleErr.Code
}

func fixtures() (*fakeSaleRepo, *fakeProductRepo, *entity.Product) {
	marmita := entity.NewProduct("Marmita", "", dec("25.00"), 10, "Comida")
	products := &fakeProductRepo{products: map[uuid.UUID]*entity.Product{marmita.ID: marmita}}
	return newFakeSaleRepo(), products, marmita
}

func TestCreateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("value derived from items when not declared", func(t *testing.T) {
		sales, products, marmita := fixtures()
		out, err := NewCreateSaleUseCase(sales, products).Execute(ctx, CreateSaleInput{SaleFields{
			Payee:         "Ana Entregas",
			PaymentMethod: "pix",
			Items:         []ItemInput{{ProductID: marmita.ID, Quantity: 4}},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Sale.Value.Equal(dec("100")) {
			t.Errorf("expected value 100, got %s", out.Sale.Value)
		}
		if out.Sale.Status != entity.SaleStatusPending {
			t.Errorf("expected default status pending, got %s", out.Sale.Status)
		}
		if out.Sale.Items[0].ProductName != "Marmita" {
			t.Errorf("expected product name resolved, got %q", out.Sale.Items[0].ProductName)
		}
		if len(out.Warnings) != 0 {
			t.Errorf("expected no warnings, got %v", out.Warnings)
		}
		if out.Sale.Date.IsZero() {
			t.Error("expected missing date to default to now")
		}
	})

	t.Run("mismatched declared value is stored with a warning", func(t *testing.T) {
		sales, products, marmita := fixtures()
		out, err := NewCreateSaleUseCase(sales, products).Execute(ctx, CreateSaleInput{SaleFields{
			Value:         decPtr("90"),
			PaymentMethod: "Dinheiro",
			Items:         []ItemInput{{ProductID: marmita.ID, Quantity: 2, UnitPrice: decPtr("50")}},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales.sales) != 1 {
			t.Fatalf("expected sale stored")
		}
		if len(out.Warnings) != 1 || !out.Warnings[0].Derived.Equal(dec("100")) {
			t.Errorf("expected one warning with derived 100, got %v", out.Warnings)
		}
		if !out.Sale.Value.Equal(dec("90")) {
			t.Errorf("declared value must be kept, got %s", out.Sale.Value)
		}
	})

	errorCases := []struct {
		name   string
		fields func(marmita *entity.Product) SaleFields
		code   domainerror.SaleErrorCode
	}{
		{"no items", func(*entity.Product) SaleFields {
			return SaleFields{PaymentMethod: "pix"}
		}, domainerror.ErrCodeSaleWithoutItems},
		{"unknown product", func(*entity.Product) SaleFields {
			return SaleFields{PaymentMethod: "pix", Items: []ItemInput{{ProductID: uuid.New(), Quantity: 1}}}
		}, domainerror.ErrCodeSaleProductNotFound},
		{"zero quantity", func(m *entity.Product) SaleFields {
			return SaleFields{PaymentMethod: "pix", Items: []ItemInput{{ProductID: m.ID, Quantity: 0}}}
		}, domainerror.ErrCodeInvalidItemQuantity},
		{"negative unit price", func(m *entity.Product) SaleFields {
			return SaleFields{PaymentMethod: "pix", Items: []ItemInput{{ProductID: m.ID, Quantity: 1, UnitPrice: decPtr("-1")}}}
		}, domainerror.ErrCodeInvalidItemPrice},
		{"unknown payment method", func(m *entity.Product) SaleFields {
			return SaleFields{PaymentMethod: "cheque", Items: []ItemInput{{ProductID: m.ID, Quantity: 1}}}
		}, domainerror.ErrCodeInvalidSalePayment},
		{"unknown status", func(m *entity.Product) SaleFields {
			return SaleFields{PaymentMethod: "pix", Status: "lost", Items: []ItemInput{{ProductID: m.ID, Quantity: 1}}}
		}, domainerror.ErrCodeInvalidSaleStatus},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			sales, products, marmita := fixtures()
			_, err := NewCreateSaleUseCase(sales, products).Execute(ctx, CreateSaleInput{tt.fields(marmita)})
			if got := saleCode(t, err); got != tt.code {
				t.Errorf("expected %s, got %s", tt.code, got)
			}
			if len(sales.sales) != 0 {
				t.Error("invalid sale must not be stored")
			}
		})
	}
}

func TestUpdateAndDeleteSale(t *testing.T) {
	ctx := context.Background()
	sales, products, marmita := fixtures()

	created, err := NewCreateSaleUseCase(sales, products).Execute(ctx, CreateSaleInput{SaleFields{
		PaymentMethod: "pix",
		Items:         []ItemInput{{ProductID: marmita.ID, Quantity: 1}},
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	update := NewUpdateSaleUseCase(sales, products)

	t.Run("replaces fields and items", func(t *testing.T) {
		out, err := update.Execute(ctx, UpdateSaleInput{SaleID: created.Sale.ID, SaleFields: SaleFields{
			Payee:         "Bruno Motos",
			PaymentMethod: "cash",
			Status:        "Acertado",
			Items:         []ItemInput{{ProductID: marmita.ID, Quantity: 3}},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Sale.Status != entity.SaleStatusSettled || out.Sale.Payee != "Bruno Motos" {
			t.Errorf("fields not replaced: %+v", out.Sale)
		}
		if !out.Sale.Value.Equal(dec("75")) {
			t.Errorf("expected value 75, got %s", out.Sale.Value)
		}
	})

	t.Run("missing sale", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdateSaleInput{SaleID: uuid.New(), SaleFields: SaleFields{
			PaymentMethod: "pix",
			Items:         []ItemInput{{ProductID: marmita.ID, Quantity: 1}},
		}})
		if got := saleCode(t, err); got != domainerror.ErrCodeSaleNotFound {
			t.Errorf("expected not found, got %s", got)
		}
	})

	t.Run("delete then delete again", func(t *testing.T) {
		del := NewDeleteSaleUseCase(sales)
		if _, err := del.Execute(ctx, DeleteSaleInput{SaleID: created.Sale.ID}); err != nil {
			t.Fatalf("delete: %v", err)
		}
		_, err := del.Execute(ctx, DeleteSaleInput{SaleID: created.Sale.ID})
		if got := saleCode(t, err); got != domainerror.ErrCodeSaleNotFound {
			t.Errorf("expected not found, got %s", got)
		}
	})
}

func addSale(repo *fakeSaleRepo, date time.Time, payee string, items ...entity.SaleItem) {
	s := entity.NewSale(date, payee, decimal.Zero, entity.PaymentMethodPIX, entity.SaleStatusPending, "", items)
	repo.sales[s.ID] = s
}

func item(qty int, price string) entity.SaleItem {
	return entity.SaleItem{ProductID: uuid.New(), Quantity: qty, UnitPrice: dec(price)}
}

func TestListSales_Filter(t *testing.T) {
	repo := newFakeSaleRepo()
	addSale(repo, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), "Ana Entregas", item(1, "100"))
	addSale(repo, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), "Bruno Motos", item(2, "25"))
	addSale(repo, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), "ana entregas", item(1, "10"))

	uc := NewListSalesUseCase(repo, time.UTC)
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    aggregation.Filter
		wantCount int
		wantTotal string
	}{
		{"empty filter returns all", aggregation.Filter{}, 3, "160"},
		{"payee substring case-insensitive", aggregation.Filter{Payee: "ANA"}, 2, "110"},
		{"date from", aggregation.Filter{DateFrom: &from}, 2, "60"},
		{"value range", aggregation.Filter{ValueMin: decPtr("20"), ValueMax: decPtr("60")}, 1, "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), ListSalesInput{Filter: tt.filter})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Sales) != tt.wantCount {
				t.Errorf("expected %d sales, got %d", tt.wantCount, len(out.Sales))
			}
			if !out.Total.Equal(dec(tt.wantTotal)) {
				t.Errorf("expected total %s, got %s", tt.wantTotal, out.Total)
			}
		})
	}

	t.Run("inverted date range", func(t *testing.T) {
		to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(context.Background(), ListSalesInput{Filter: aggregation.Filter{DateFrom: &from, DateTo: &to}})
		if got := saleCode(t, err); got != domainerror.ErrCodeInvalidSalePeriod {
			t.Errorf("expected invalid period, got %s", got)
		}
	})
}

func TestMonthlySeries(t *testing.T) {
	repo := newFakeSaleRepo()
	addSale(repo, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "A", item(2, "50"))
	addSale(repo, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC), "B", item(1, "30"), item(3, "10"))
	addSale(repo, time.Date(2023, 6, 5, 12, 0, 0, 0, time.UTC), "outside window", item(9, "10"))

	ctx := context.Background()
	input := MonthlySeriesInput{Month: 3, Year: 2024}

	values, err := NewGetMonthlySeriesUseCase(repo, 0, time.UTC).Execute(ctx, input)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(values.Points) != DefaultSeriesMonths {
		t.Fatalf("expected %d points, got %d", DefaultSeriesMonths, len(values.Points))
	}
	first, last := values.Points[0], values.Points[len(values.Points)-1]
	if first.Month != 10 || first.Year != 2023 {
		t.Errorf("expected series to start at 10/2023, got %d/%d", first.Month, first.Year)
	}
	if last.Month != 3 || !last.Total.Equal(dec("60")) {
		t.Errorf("expected 03/2024 total 60, got %d %s", last.Month, last.Total)
	}
	if !values.Points[4].Total.IsZero() {
		t.Errorf("expected zero-filled February, got %s", values.Points[4].Total)
	}

	units, err := NewGetMonthlyUnitsUseCase(repo, 0, time.UTC).Execute(ctx, input)
	if err != nil {
		t.Fatalf("units: %v", err)
	}
	if units.Points[3].Units != 2 || units.Points[5].Units != 4 {
		t.Errorf("unexpected units: %+v", units.Points)
	}

	_, err = NewGetMonthlySeriesUseCase(repo, 0, time.UTC).Execute(ctx, MonthlySeriesInput{Month: 13, Year: 2024})
	if got := saleCode(t, err); got != domainerror.ErrCodeInvalidSalePeriod {
		t.Errorf("expected invalid period, got %s", got)
	}
}
