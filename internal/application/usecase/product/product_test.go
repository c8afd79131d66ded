package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
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
	if _, ok := r.products[id]; !ok {
		return domainerror.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func productCode(t *testing.T, err error) domainerror.ProductErrorCode {
	t.Helper()
	var prdErr *domainerror.ProductError
	if !errors.As(err, &prdErr) {
		t.Fatalf("expected ProductError, got %v", err)
	}
	return prdErr.Code
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name   string
		fields ProductFields
		code   domainerror.ProductErrorCode
	}{
		{"valid", ProductFields{Name: " Marmita ", Price: decPtr("25"), Stock: 3}, ""},
		{"nil price is zero", ProductFields{Name: "Brinde"}, ""},
		{"missing name", ProductFields{Name: " ", Price: decPtr("1")}, domainerror.ErrCodeProductNameRequired},
		{"negative price", ProductFields{Name: "X", Price: decPtr("-0.01")}, domainerror.ErrCodeInvalidProductPrice},
		{"negative stock", ProductFields{Name: "X", Stock: -1}, domainerror.ErrCodeInvalidProductStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeProductRepo()
			out, err := NewCreateProductUseCase(repo).Execute(context.Background(), CreateProductInput{tt.fields})
			if tt.code != "" {
				if got := productCode(t, err); got != tt.code {
					t.Errorf("expected %s, got %s", tt.code, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Product.Name == "" || out.Product.Price.IsNegative() {
				t.Errorf("unexpected product: %+v", out.Product)
			}
		})
	}
}

func TestProductLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()

	created, err := NewCreateProductUseCase(repo).Execute(ctx, CreateProductInput{ProductFields{Name: "Marmita", Price: decPtr("25")}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Product.ID

	updated, err := NewUpdateProductUseCase(repo).Execute(ctx, UpdateProductInput{
		ProductID:     id,
		ProductFields: ProductFields{Name: "Marmita G", Price: decPtr("30"), Stock: 5},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Product.Name != "Marmita G" || !updated.Product.Price.Equal(decimal.NewFromInt(30)) {
		t.Errorf("unexpected update: %+v", updated.Product)
	}

	got, err := NewGetProductUseCase(repo).Execute(ctx, GetProductInput{ProductID: id})
	if err != nil || got.Product.Stock != 5 {
		t.Fatalf("get: %v %+v", err, got)
	}

	list, err := NewListProductsUseCase(repo).Execute(ctx)
	if err != nil || len(list.Products) != 1 {
		t.Fatalf("list: %v", err)
	}

	if _, err := NewDeleteProductUseCase(repo).Execute(ctx, DeleteProductInput{ProductID: id}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = NewGetProductUseCase(repo).Execute(ctx, GetProductInput{ProductID: id})
	if code := productCode(t, err); code != domainerror.ErrCodeProductNotFound {
		t.Errorf("expected not found, got %s", code)
	}
}
