package repository

import (
	"context"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para servicios del salón.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
}
