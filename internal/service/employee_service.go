package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/model"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
)

type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	// Delete removes a roster entry. When the target is an administrator the
	// caller must re-send the demo password; a mismatch returns
	// ErrWrongPassword and leaves the roster unchanged.
	Delete(ctx context.Context, id, password string) error
}

type employeeService struct {
	repo repository.EmployeeRepository
	auth AuthService
}

func NewEmployeeService(repo repository.EmployeeRepository, auth AuthService) EmployeeService {
	return &employeeService{repo: repo, auth: auth}
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &model.Employee{
		ID:       fmt.Sprintf("E-%d", time.Now().UnixMilli()),
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		HireDate: req.HireDate,
		Phone:    req.Phone,
		Avatar:   req.Avatar,
		Status:   req.Status,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return employeeToResponse(e), nil
}

func (s *employeeService) List(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = *employeeToResponse(&employees[i])
	}
	return resp, nil
}

func (s *employeeService) Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	e.Name = req.Name
	e.Email = req.Email
	e.Role = req.Role
	e.HireDate = req.HireDate
	e.Phone = req.Phone
	e.Avatar = req.Avatar
	e.Status = req.Status
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

func (s *employeeService) Delete(ctx context.Context, id, password string) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	// Deleting an administrator is gated by a password re-entry against the
	// same demo constant used for login. Any other role deletes outright.
	if e.Role == model.RoleAdmin && !s.auth.ConfirmPassword(password) {
		return ErrWrongPassword
	}
	return s.repo.Delete(ctx, id)
}

func employeeToResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		Role:     e.Role,
		HireDate: e.HireDate,
		Phone:    e.Phone,
		Avatar:   e.Avatar,
		Status:   e.Status,
	}
}
