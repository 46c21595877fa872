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

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación de AppointmentRepository (usable con pool o tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

const appointmentColumns = `
	id, tenant_id, employee_id, service_ids, client_name, client_phone,
	client_id, start_at, end_at, status, created_at`

// Create persiste una nueva cita.
func (r *AppointmentRepo) Create(ctx context.Context, appt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, tenant_id, employee_id, service_ids, client_name,
			client_phone, client_id, start_at, end_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		appt.ID, appt.TenantID, appt.EmployeeID, appt.ServiceIDs, appt.ClientName,
		appt.ClientPhone, nullIfEmpty(appt.ClientID), appt.Start, appt.End, appt.Status, appt.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID; (nil, nil) si no existe.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	query := `SELECT` + appointmentColumns + ` FROM appointments WHERE id = $1`
	a, err := scanAppointment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

// Update reescribe la fila completa de la cita.
func (r *AppointmentRepo) Update(ctx context.Context, appt *entity.Appointment) error {
	query := `
		UPDATE appointments SET employee_id = $2, service_ids = $3, client_name = $4,
			client_phone = $5, client_id = $6, start_at = $7, end_at = $8, status = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		appt.ID, appt.EmployeeID, appt.ServiceIDs, appt.ClientName,
		appt.ClientPhone, nullIfEmpty(appt.ClientID), appt.Start, appt.End, appt.Status,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// Delete elimina una cita por ID.
func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// ListByTenantAndEmployee lista todas las citas del par, por inicio ascendente.
func (r *AppointmentRepo) ListByTenantAndEmployee(ctx context.Context, tenantID, employeeID string) ([]*entity.Appointment, error) {
	query := `SELECT` + appointmentColumns + `
		FROM appointments WHERE tenant_id = $1 AND employee_id = $2 ORDER BY start_at`
	return r.list(ctx, query, tenantID, employeeID)
}

// ListByTenantAndRange lista citas con inicio dentro de [from, to], por inicio ascendente.
func (r *AppointmentRepo) ListByTenantAndRange(ctx context.Context, tenantID string, from, to time.Time) ([]*entity.Appointment, error) {
	query := `SELECT` + appointmentColumns + `
		FROM appointments WHERE tenant_id = $1 AND start_at >= $2 AND start_at <= $3 ORDER BY start_at`
	return r.list(ctx, query, tenantID, from, to)
}

func (r *AppointmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// scanAppointment lee una fila de appointments. client_id es NULL cuando la
// cita no tiene ficha de cliente: se mapea a string vacío.
func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	var clientID *string
	err := row.Scan(
		&a.ID, &a.TenantID, &a.EmployeeID, &a.ServiceIDs, &a.ClientName, &a.ClientPhone,
		&clientID, &a.Start, &a.End, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if clientID != nil {
		a.ClientID = *clientID
	}
	return &a, nil
}
