package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/model"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
)

type SaleService interface {
	// Register creates a sale on behalf of the signed-in employee, whose
	// identity is denormalized onto the record.
	Register(ctx context.Context, req dto.RegisterSaleRequest, employeeID, employeeName string) (*dto.SaleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateSaleRequest) (*dto.SaleResponse, error)
	Delete(ctx context.Context, id string) error
}

type saleService struct {
	repo         repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func NewSaleService(repo repository.SaleRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) SaleService {
	return &saleService{repo: repo, productRepo: productRepo, customerRepo: customerRepo}
}

func (s *saleService) Register(ctx context.Context, req dto.RegisterSaleRequest, employeeID, employeeName string) (*dto.SaleResponse, error) {
	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	sale := &model.Sale{
		ID:            fmt.Sprintf("V-%d-%03d", now.Year(), count+1),
		Date:          now,
		Items:         items,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		EmployeeID:    employeeID,
		EmployeeName:  employeeName,
		Status:        model.SaleCompleted,
	}

	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, errors.New("Cliente nao encontrado")
		}
		sale.CustomerID = &customer.ID
		sale.CustomerName = &customer.Name

		// The original's sales screen mutates the shared customer list when
		// a sale lands; the shared store gets the same bump.
		last := now.Format("2006-01-02")
		customer.Purchases++
		customer.LastPurchase = &last
		if err := s.customerRepo.Update(ctx, customer); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return saleToResponse(sale), nil
}

func (s *saleService) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		resp[i] = *saleToResponse(&sales[i])
	}
	return resp, nil
}

func (s *saleService) Update(ctx context.Context, id string, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	// Edits replace the whole item list; date and employee stay as registered.
	sale.Total = total
	sale.PaymentMethod = req.PaymentMethod
	sale.Status = req.Status
	sale.CustomerID = nil
	sale.CustomerName = nil
	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, errors.New("Cliente nao encontrado")
		}
		sale.CustomerID = &customer.ID
		sale.CustomerName = &customer.Name
	}

	if err := s.repo.ReplaceItems(ctx, sale, items); err != nil {
		return nil, err
	}
	return saleToResponse(sale), nil
}

func (s *saleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// buildItems resolves each requested line against the catalog and computes
// subtotal = quantity × current selling price. Quantities are deliberately
// NOT checked against on-hand stock, matching the system being modeled.
func (s *saleService) buildItems(ctx context.Context, reqs []dto.SaleItemRequest) ([]model.SaleItem, decimal.Decimal, error) {
	items := make([]model.SaleItem, 0, len(reqs))
	total := decimal.Zero
	for _, it := range reqs {
		p, err := s.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, decimal.Zero, errors.New("Produto nao encontrado: " + it.ProductID)
		}
		subtotal := p.SellingPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, model.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			UnitPrice:   p.SellingPrice,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}
	return items, total, nil
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, len(sale.Items))
	for i, it := range sale.Items {
		items[i] = dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		}
	}
	return &dto.SaleResponse{
		ID:            sale.ID,
		CustomerID:    sale.CustomerID,
		CustomerName:  sale.CustomerName,
		Date:          sale.Date.UTC().Format(time.RFC3339),
		Items:         items,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		EmployeeID:    sale.EmployeeID,
		EmployeeName:  sale.EmployeeName,
		Status:        sale.Status,
	}
}
