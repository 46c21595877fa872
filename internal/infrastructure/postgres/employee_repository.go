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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, tenant_id, name, email, phone, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.TenantID, employee.Name, employee.Email, employee.Phone, employee.Notes, employee.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `
		SELECT id, tenant_id, name, email, phone, notes, created_at
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.TenantID, &e.Name, &e.Email, &e.Phone, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// ListByTenant lista los empleados del tenant por nombre.
func (r *EmployeeRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Employee, error) {
	query := `
		SELECT id, tenant_id, name, email, phone, notes, created_at
		FROM employees WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.TenantID, &e.Name, &e.Email, &e.Phone, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del empleado.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, email = $3, phone = $4, notes = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.Name, employee.Email, employee.Phone, employee.Notes,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
