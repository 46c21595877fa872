package repository

import (
	"context"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para fichas de cliente.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
