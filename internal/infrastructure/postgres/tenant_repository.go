package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación de TenantRepository (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un nuevo tenant; created_at lo asigna el servidor.
func (r *TenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, is_active, created_at, created_by)
		VALUES ($1, $2, $3, now(), $4)`
	_, err := r.q.Exec(ctx, query, tenant.ID, tenant.Name, tenant.IsActive, tenant.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID; (nil, nil) si no existe.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, is_active, created_at, created_by
		FROM tenants WHERE id = $1`
	t, err := scanTenant(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

// Exists verifica si hay un tenant con ese ID.
func (r *TenantRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists tenant: %w", err)
	}
	return exists, nil
}

// UpdateName cambia el nombre visible del tenant.
func (r *TenantRepo) UpdateName(ctx context.Context, id, name string) error {
	_, err := r.q.Exec(ctx, `UPDATE tenants SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("update tenant name: %w", err)
	}
	return nil
}

// SetActive habilita o deshabilita el tenant.
func (r *TenantRepo) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.q.Exec(ctx, `UPDATE tenants SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set tenant active: %w", err)
	}
	return nil
}

// ListOrdered lista tenants más recientes primero; created_at nulo va al final.
func (r *TenantRepo) ListOrdered(ctx context.Context, limit int) ([]*entity.Tenant, error) {
	query := `
		SELECT id, name, is_active, created_at, created_by
		FROM tenants ORDER BY created_at DESC NULLS LAST LIMIT $1`
	return r.list(ctx, query, limit)
}

// ListUnordered lista tenants sin orden garantizado (fallback del caller).
func (r *TenantRepo) ListUnordered(ctx context.Context, limit int) ([]*entity.Tenant, error) {
	query := `
		SELECT id, name, is_active, created_at, created_by
		FROM tenants LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *TenantRepo) list(ctx context.Context, query string, limit int) ([]*entity.Tenant, error) {
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// scanTenant lee una fila de tenants. created_at y created_by son NULL en
// filas legacy: se mapean al valor cero (el caller ordena "sin fecha" al final).
func scanTenant(row pgx.Row) (*entity.Tenant, error) {
	var t entity.Tenant
	var createdAt *time.Time
	var createdBy *string
	if err := row.Scan(&t.ID, &t.Name, &t.IsActive, &createdAt, &createdBy); err != nil {
		return nil, err
	}
	if createdAt != nil {
		t.CreatedAt = *createdAt
	}
	if createdBy != nil {
		t.CreatedBy = *createdBy
	}
	return &t, nil
}
