package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/model"
)

// ServiceOrderRepository defines the data access contract for repair tickets.
type ServiceOrderRepository interface {
	Create(ctx context.Context, o *model.ServiceOrder) error
	FindByID(ctx context.Context, id string) (*model.ServiceOrder, error)
	List(ctx context.Context, filter dto.ServiceOrderFilter) ([]model.ServiceOrder, error)
	ListAll(ctx context.Context) ([]model.ServiceOrder, error)
	Update(ctx context.Context, o *model.ServiceOrder) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type serviceOrderRepo struct{ db *gorm.DB }

func NewServiceOrderRepository(db *gorm.DB) ServiceOrderRepository {
	return &serviceOrderRepo{db: db}
}

func (r *serviceOrderRepo) Create(ctx context.Context, o *model.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *serviceOrderRepo) FindByID(ctx context.Context, id string) (*model.ServiceOrder, error) {
	var o model.ServiceOrder
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	return &o, err
}

func (r *serviceOrderRepo) List(ctx context.Context, filter dto.ServiceOrderFilter) ([]model.ServiceOrder, error) {
	var orders []model.ServiceOrder
	q := r.db.WithContext(ctx).Model(&model.ServiceOrder{})

	// Status filter applies before the free-text filter.
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Q != "" {
		like := "%" + strings.ToLower(filter.Q) + "%"
		q = q.Where(
			"LOWER(id) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(device_model) LIKE ? OR LOWER(defect) LIKE ?",
			like, like, like, like,
		)
	}
	err := q.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *serviceOrderRepo) ListAll(ctx context.Context) ([]model.ServiceOrder, error) {
	var orders []model.ServiceOrder
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *serviceOrderRepo) Update(ctx context.Context, o *model.ServiceOrder) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *serviceOrderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceOrder{}, "id = ?", id).Error
}

func (r *serviceOrderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ServiceOrder{}).Count(&n).Error
	return n, err
}
