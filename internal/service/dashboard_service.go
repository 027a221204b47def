package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/model"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
)

// DashboardService aggregates over the four record sets. Everything is
// recomputed on every call; there is no cache and no incremental update.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.ServiceOrderRepository
	customerRepo repository.CustomerRepository
}

func NewDashboardService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, orderRepo repository.ServiceOrderRepository, customerRepo repository.CustomerRepository) DashboardService {
	return &dashboardService{saleRepo: saleRepo, productRepo: productRepo, orderRepo: orderRepo, customerRepo: customerRepo}
}

const recentLimit = 5

func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	// Total sales sums every record regardless of status; canceled sales are
	// counted too, exactly as the modeled dashboard does.
	totalSales := decimal.Zero
	for i := range sales {
		totalSales = totalSales.Add(sales[i].Total)
	}

	stockUnits := 0
	var lowStock []dto.ProductResponse
	for i := range products {
		stockUnits += products[i].Quantity
		if products[i].Quantity <= products[i].LowStockThreshold {
			lowStock = append(lowStock, *productToResponse(&products[i]))
		}
	}

	open := make(map[string]bool, len(model.OpenOrderStatuses))
	for _, st := range model.OpenOrderStatuses {
		open[st] = true
	}
	pending := 0
	for i := range orders {
		if open[orders[i].Status] {
			pending++
		}
	}

	recentSales := make([]dto.SaleResponse, 0, recentLimit)
	for i := range sales {
		if i == recentLimit {
			break
		}
		recentSales = append(recentSales, *saleToResponse(&sales[i]))
	}
	recentOrders := make([]dto.ServiceOrderResponse, 0, recentLimit)
	for i := range orders {
		if i == recentLimit {
			break
		}
		recentOrders = append(recentOrders, *orderToResponse(&orders[i]))
	}

	return &dto.DashboardResponse{
		TotalSales:    totalSales,
		Customers:     customers,
		StockUnits:    stockUnits,
		LowStock:      lowStock,
		PendingOrders: pending,
		RecentSales:   recentSales,
		RecentOrders:  recentOrders,
	}, nil
}
