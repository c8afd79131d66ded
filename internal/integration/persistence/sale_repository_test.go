package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.ProductModel{}, &model.SaleModel{}, &model.SaleItemModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSaleRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewProductRepository(db)
	sales := NewSaleRepository(db)

	bolo := entity.NewProduct("Bolo", "", decimal.NewFromInt(10), 5, "Doces")
	torta := entity.NewProduct("Torta", "", decimal.NewFromInt(25), 5, "Doces")
	for _, p := range []*entity.Product{bolo, torta} {
		if err := products.Create(ctx, p); err != nil {
			t.Fatalf("failed to create product: %v", err)
		}
	}

	date := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	sale := entity.NewSale(date, "Maria", decimal.Zero, entity.PaymentMethodPIX, "", "", []entity.SaleItem{
		{ProductID: bolo.ID, Quantity: 2, UnitPrice: bolo.Price},
		{ProductID: torta.ID, Quantity: 1, UnitPrice: torta.Price},
	})

	t.Run("create then find keeps items in order", func(t *testing.T) {
		if err := sales.Create(ctx, sale); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		got, err := sales.FindByID(ctx, sale.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if !got.Value.Equal(decimal.NewFromInt(45)) {
			t.Errorf("Value = %s, want 45", got.Value)
		}
		if len(got.Items) != 2 {
			t.Fatalf("len(Items) = %d, want 2", len(got.Items))
		}
		if got.Items[0].ProductName != "Bolo" || got.Items[1].ProductName != "Torta" {
			t.Errorf("items out of order: %+v", got.Items)
		}
		if got.UnitsSold() != 3 {
			t.Errorf("UnitsSold() = %d, want 3", got.UnitsSold())
		}
	})

	t.Run("update replaces items", func(t *testing.T) {
		sale.Items = []entity.SaleItem{{ID: uuid.New(), ProductID: torta.ID, Quantity: 4, UnitPrice: torta.Price}}
		sale.Value = sale.ItemsTotal()
		sale.Status = entity.SaleStatusSettled
		if err := sales.Update(ctx, sale); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		got, err := sales.FindByID(ctx, sale.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].Quantity != 4 {
			t.Errorf("items not replaced: %+v", got.Items)
		}
		if got.Status != entity.SaleStatusSettled {
			t.Errorf("Status = %q, want settled", got.Status)
		}

		var count int64
		db.Model(&model.SaleItemModel{}).Count(&count)
		if count != 1 {
			t.Errorf("sale_items rows = %d, want 1", count)
		}
	})

	t.Run("update of a missing sale", func(t *testing.T) {
		ghost := entity.NewSale(date, "", decimal.NewFromInt(1), entity.PaymentMethodCash, "", "", nil)
		if err := sales.Update(ctx, ghost); !errors.Is(err, domainerror.ErrSaleNotFound) {
			t.Errorf("Update() error = %v, want ErrSaleNotFound", err)
		}
	})

	t.Run("find all returns every sale", func(t *testing.T) {
		all, err := sales.FindAll(ctx)
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(all) != 1 {
			t.Errorf("len(FindAll()) = %d, want 1", len(all))
		}
	})

	t.Run("delete removes the sale and its items", func(t *testing.T) {
		if err := sales.Delete(ctx, sale.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := sales.FindByID(ctx, sale.ID); !errors.Is(err, domainerror.ErrSaleNotFound) {
			t.Errorf("FindByID() after delete error = %v, want ErrSaleNotFound", err)
		}
		if err := sales.Delete(ctx, sale.ID); !errors.Is(err, domainerror.ErrSaleNotFound) {
			t.Errorf("second Delete() error = %v, want ErrSaleNotFound", err)
		}
	})
}
