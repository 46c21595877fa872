package repository

import (
	"context"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure. GetByID devuelve (nil, nil) si el
// tenant no existe: la ausencia es un resultado válido, no un error.
type TenantRepository interface {
	// Create inserta el tenant; CreatedAt lo asigna el servidor de datos.
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateName(ctx context.Context, id, name string) error
	SetActive(ctx context.Context, id string, active bool) error
	// ListOrdered devuelve tenants más recientes primero según CreatedAt.
	ListOrdered(ctx context.Context, limit int) ([]*entity.Tenant, error)
	// ListUnordered es el fallback cuando el orden por CreatedAt no está
	// disponible; el caller ordena en memoria.
	ListUnordered(ctx context.Context, limit int) ([]*entity.Tenant, error)
}
