package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/model"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
)

type ServiceOrderService interface {
	Create(ctx context.Context, req dto.CreateServiceOrderRequest) (*dto.ServiceOrderResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ServiceOrderResponse, error)
	List(ctx context.Context, filter dto.ServiceOrderFilter) ([]dto.ServiceOrderResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateServiceOrderRequest) (*dto.ServiceOrderResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceOrderService struct {
	repo         repository.ServiceOrderRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
}

func NewServiceOrderService(repo repository.ServiceOrderRepository, customerRepo repository.CustomerRepository, employeeRepo repository.EmployeeRepository) ServiceOrderService {
	return &serviceOrderService{repo: repo, customerRepo: customerRepo, employeeRepo: employeeRepo}
}

func (s *serviceOrderService) Create(ctx context.Context, req dto.CreateServiceOrderRequest) (*dto.ServiceOrderResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, errors.New("Cliente nao encontrado")
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &model.ServiceOrder{
		ID:             fmt.Sprintf("OS-%d-%03d", now.Year(), count+1),
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		DeviceType:     req.DeviceType,
		DeviceModel:    req.DeviceModel,
		Defect:         req.Defect,
		IMEI:           req.IMEI,
		DevicePassword: req.DevicePassword,
		Budget:         req.Budget,
		Notes:          req.Notes,
		Status:         model.OrderPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.assignTechnician(ctx, order, req.TechnicianID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *serviceOrderService) GetByID(ctx context.Context, id string) (*dto.ServiceOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return orderToResponse(order), nil
}

func (s *serviceOrderService) List(ctx context.Context, filter dto.ServiceOrderFilter) ([]dto.ServiceOrderResponse, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ServiceOrderResponse, len(orders))
	for i := range orders {
		resp[i] = *orderToResponse(&orders[i])
	}
	return resp, nil
}

func (s *serviceOrderService) Update(ctx context.Context, id string, req dto.UpdateServiceOrderRequest) (*dto.ServiceOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	// Any status may follow any other; there is no transition table.
	order.DeviceType = req.DeviceType
	order.DeviceModel = req.DeviceModel
	order.Defect = req.Defect
	order.IMEI = req.IMEI
	order.DevicePassword = req.DevicePassword
	order.Budget = req.Budget
	order.Notes = req.Notes
	order.Status = req.Status
	order.UpdatedAt = time.Now()
	if err := s.assignTechnician(ctx, order, req.TechnicianID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *serviceOrderService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// assignTechnician resolves the technician reference and denormalizes the
// name onto the order, or clears both when unassigned.
func (s *serviceOrderService) assignTechnician(ctx context.Context, order *model.ServiceOrder, technicianID *string) error {
	if technicianID == nil {
		order.TechnicianID = nil
		order.TechnicianName = nil
		return nil
	}
	tech, err := s.employeeRepo.FindByID(ctx, *technicianID)
	if err != nil {
		return errors.New("Tecnico nao encontrado")
	}
	order.TechnicianID = &tech.ID
	order.TechnicianName = &tech.Name
	return nil
}

func orderToResponse(o *model.ServiceOrder) *dto.ServiceOrderResponse {
	return &dto.ServiceOrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		DeviceType:     o.DeviceType,
		DeviceModel:    o.DeviceModel,
		Defect:         o.Defect,
		IMEI:           o.IMEI,
		DevicePassword: o.DevicePassword,
		Budget:         o.Budget,
		Notes:          o.Notes,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339),
		TechnicianID:   o.TechnicianID,
		TechnicianName: o.TechnicianName,
	}
}
