package repository

import (
	"context"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) error
}
