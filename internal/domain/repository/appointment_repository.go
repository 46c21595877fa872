package repository

import (
	"context"
	"time"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para citas.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	// Update reescribe la fila completa; las actualizaciones parciales se
	// resuelven en el caso de uso (leer, aplicar patch, persistir).
	Update(ctx context.Context, appt *entity.Appointment) error
	Delete(ctx context.Context, id string) error
	// ListByTenantAndEmployee devuelve TODAS las citas del par, ordenadas por
	// inicio ascendente (la forma de consulta del chequeo de solapamiento).
	ListByTenantAndEmployee(ctx context.Context, tenantID, employeeID string) ([]*entity.Appointment, error)
	// ListByTenantAndRange devuelve citas cuyo inicio cae en [from, to],
	// ordenadas por inicio ascendente.
	ListByTenantAndRange(ctx context.Context, tenantID string, from, to time.Time) ([]*entity.Appointment, error)
}
