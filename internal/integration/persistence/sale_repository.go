// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create stores a sale and its items.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	if err := r.db.WithContext(ctx).Create(saleModel).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

// FindByID retrieves a sale with its items.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.withItems(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindAll retrieves every sale, most recent first.
func (r *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var models []model.SaleModel
	if err := r.withItems(ctx).Order("date DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return salesToEntities(models), nil
}

// FindBetween retrieves sales dated in [from, to), most recent first.
func (r *saleRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	var models []model.SaleModel
	err := r.withItems(ctx).
		Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Order("date DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales between %s and %s: %w", from, to, err)
	}
	return salesToEntities(models), nil
}

// Update replaces the sale row and its items in one transaction.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.SaleModel
		if err := tx.Select("id").Where("id = ?", sale.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrSaleNotFound
			}
			return err
		}

		if err := tx.Where("sale_id = ?", sale.ID).Delete(&model.SaleItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to replace sale items: %w", err)
		}

		if err := tx.Omit(clause.Associations).Save(saleModel).Error; err != nil {
			return fmt.Errorf("failed to update sale: %w", err)
		}

		if len(saleModel.Items) > 0 {
			if err := tx.Create(&saleModel.Items).Error; err != nil {
				return fmt.Errorf("failed to create sale items: %w", err)
			}
		}
		return nil
	})
}

// Delete removes a sale and its items.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&model.SaleItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.SaleModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSaleNotFound
		}
		return nil
	})
}

// withItems preloads line items in their stored order along with product names.
func (r *saleRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Items.Product")
}

func salesToEntities(models []model.SaleModel) []*entity.Sale {
	sales := make([]*entity.Sale, len(models))
	for i := range models {
		sales[i] = models[i].ToEntity()
	}
	return sales
}
