package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/model"
)

// SaleRepository defines the data access contract for sales.
type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	FindByID(ctx context.Context, id string) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error)
	ListAll(ctx context.Context) ([]model.Sale, error)
	// ReplaceItems swaps the full item list and saves the sale header in one
	// transaction — sale edits never diff lines.
	ReplaceItems(ctx context.Context, s *model.Sale, items []model.SaleItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	var sales []model.Sale
	q := r.db.WithContext(ctx).Model(&model.Sale{}).Preload("Items")
	if filter.Q != "" {
		like := "%" + strings.ToLower(filter.Q) + "%"
		q = q.Where("LOWER(id) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(payment_method) LIKE ?", like, like, like)
	}
	err := q.Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Preload("Items").Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ReplaceItems(ctx context.Context, s *model.Sale, items []model.SaleItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", s.ID).Delete(&model.SaleItem{}).Error; err != nil {
			return err
		}
		s.Items = nil
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].SaleID = s.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		s.Items = items
		return nil
	})
}

func (r *saleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&model.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Sale{}, "id = ?", id).Error
	})
}

func (r *saleRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Count(&n).Error
	return n, err
}
