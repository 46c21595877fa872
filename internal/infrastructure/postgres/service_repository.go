package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository (usable con pool o tx).
// El precio es NUMERIC en la tabla; el codec de shopspring registrado en el
// pool lo mapea a decimal.Decimal sin pérdida.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, tenant_id, name, duration_min, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		service.ID, service.TenantID, service.Name, service.DurationMin, service.Price, service.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID; (nil, nil) si no existe.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	query := `
		SELECT id, tenant_id, name, duration_min, price, created_at
		FROM services WHERE id = $1`
	var s entity.Service
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.DurationMin, &s.Price, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// ListByTenant lista los servicios del tenant por nombre.
func (r *ServiceRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Service, error) {
	query := `
		SELECT id, tenant_id, name, duration_min, price, created_at
		FROM services WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.DurationMin, &s.Price, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del servicio.
func (r *ServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services SET name = $2, duration_min = $3, price = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		service.ID, service.Name, service.DurationMin, service.Price,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
