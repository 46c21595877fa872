package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados scopeado por tenant.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create alta de empleado; name y email son obligatorios.
func (uc *EmployeeUseCase) Create(ctx context.Context, tenantID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID devuelve el empleado si pertenece al tenant.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.TenantID != tenantID {
		return nil, nil
	}
	return toEmployeeResponse(employee), nil
}

// List devuelve los empleados del tenant.
func (uc *EmployeeUseCase) List(ctx context.Context, tenantID string) (*dto.EmployeeListResponse, error) {
	employees, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items}, nil
}

// Update reemplaza los campos editables del empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	employee.Name = in.Name
	employee.Email = in.Email
	employee.Phone = in.Phone
	employee.Notes = in.Notes
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina el empleado si pertenece al tenant. Las citas que lo
// referencian quedan colgando a propósito: no hay FK.
func (uc *EmployeeUseCase) Delete(ctx context.Context, tenantID, id string) error {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil || employee.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		TenantID:  e.TenantID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}
