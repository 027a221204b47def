package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/model"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		ID:                fmt.Sprintf("P-%d", time.Now().UnixMilli()),
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		PurchasePrice:     req.PurchasePrice,
		SellingPrice:      req.SellingPrice,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		ImageURL:          req.ImageURL,
		SKU:               req.SKU,
		RegisteredAt:      time.Now().Format("2006-01-02"),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = *productToResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.PurchasePrice = req.PurchasePrice
	p.SellingPrice = req.SellingPrice
	p.Quantity = req.Quantity
	p.LowStockThreshold = req.LowStockThreshold
	p.ImageURL = req.ImageURL
	p.SKU = req.SKU
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category,
		PurchasePrice:     p.PurchasePrice,
		SellingPrice:      p.SellingPrice,
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		ImageURL:          p.ImageURL,
		SKU:               p.SKU,
		CreatedAt:         p.RegisteredAt,
		StockStatus:       p.StockStatus(),
	}
}
