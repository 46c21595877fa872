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

// ServiceUseCase CRUD de servicios del salón scopeado por tenant.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create alta de servicio; la duración debe ser positiva y el precio no
// negativo.
func (uc *ServiceUseCase) Create(ctx context.Context, tenantID string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || in.DurationMin <= 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	service := &entity.Service{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        in.Name,
		DurationMin: in.DurationMin,
		Price:       in.Price,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID devuelve el servicio si pertenece al tenant.
func (uc *ServiceUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil || service.TenantID != tenantID {
		return nil, nil
	}
	return toServiceResponse(service), nil
}

// List devuelve los servicios del tenant.
func (uc *ServiceUseCase) List(ctx context.Context, tenantID string) (*dto.ServiceListResponse, error) {
	services, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, *toServiceResponse(s))
	}
	return &dto.ServiceListResponse{Items: items}, nil
}

// Update reemplaza los campos editables del servicio.
func (uc *ServiceUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil || service.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.DurationMin <= 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	service.Name = in.Name
	service.DurationMin = in.DurationMin
	service.Price = in.Price
	if err := uc.repo.Update(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete elimina el servicio si pertenece al tenant.
func (uc *ServiceUseCase) Delete(ctx context.Context, tenantID, id string) error {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil || service.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		TenantID:    s.TenantID,
		Name:        s.Name,
		DurationMin: s.DurationMin,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt,
	}
}
