package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/booking"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

// BookingTxRunner ejecuta fn con un repositorio de citas atado a una
// transacción: el chequeo de solapamiento y la escritura que lo sigue deben
// ver el mismo snapshot.
type BookingTxRunner interface {
	Run(ctx context.Context, fn func(appts repository.AppointmentRepository) error) error
}

// AppointmentUseCase agenda de citas: CRUD más el chequeo de solapamiento
// previo a cada escritura.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
	tx   BookingTxRunner
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository, tx BookingTxRunner) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, tx: tx}
}

// HasOverlap informa si la ventana [start, end) choca con alguna cita
// pending/confirmed del par (tenant, empleado), saltando excludeID.
//
// Los errores del repositorio PROPAGAN: permitir silenciosamente una doble
// reserva es peor que un error visible, así que aquí no hay default seguro.
func (uc *AppointmentUseCase) HasOverlap(ctx context.Context, tenantID, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	return hasOverlapIn(ctx, uc.repo, tenantID, employeeID, start, end, excludeID)
}

// hasOverlapIn corre el chequeo contra el repo dado (pool o tx). Barrido
// lineal: los volúmenes por empleado y día son pequeños; si eso deja de ser
// cierto, este es el punto a optimizar.
func hasOverlapIn(ctx context.Context, repo repository.AppointmentRepository, tenantID, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	existing, err := repo.ListByTenantAndEmployee(ctx, tenantID, employeeID)
	if err != nil {
		return false, err
	}
	for _, a := range existing {
		if booking.ConflictsWith(a, start, end, excludeID) {
			return true, nil
		}
	}
	return false, nil
}

// Create valida la cita, chequea solapamiento cuando el estado bloquea agenda
// y persiste. Status vacío se asume confirmed.
func (uc *AppointmentUseCase) Create(ctx context.Context, tenantID string, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusConfirmed
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if tenantID == "" || in.EmployeeID == "" || in.Start.IsZero() || in.End.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !in.End.After(in.Start) {
		return nil, domain.ErrInvalidInput
	}

	appt := &entity.Appointment{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		EmployeeID:  in.EmployeeID,
		ServiceIDs:  in.ServiceIDs,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ClientID:    in.ClientID,
		Start:       in.Start,
		End:         in.End,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	if err := uc.write(ctx, appt, "", func(repo repository.AppointmentRepository) error {
		return repo.Create(ctx, appt)
	}); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// GetByID devuelve la cita si pertenece al tenant.
func (uc *AppointmentUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil || appt.TenantID != tenantID {
		return nil, nil
	}
	return toAppointmentResponse(appt), nil
}

// ListByDate devuelve las citas del tenant cuyo inicio cae dentro del día.
func (uc *AppointmentUseCase) ListByDate(ctx context.Context, tenantID string, date time.Time) (*dto.AppointmentListResponse, error) {
	from, to := dayBounds(date)
	return uc.ListByRange(ctx, tenantID, from, to)
}

// ListByRange devuelve las citas del tenant con inicio dentro de [from, to],
// extendiendo los extremos a día completo como hace la vista de agenda.
func (uc *AppointmentUseCase) ListByRange(ctx context.Context, tenantID string, from, to time.Time) (*dto.AppointmentListResponse, error) {
	start, _ := dayBounds(from)
	_, end := dayBounds(to)
	appts, err := uc.repo.ListByTenantAndRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		items = append(items, *toAppointmentResponse(a))
	}
	return &dto.AppointmentListResponse{Items: items}, nil
}

// Update aplica un patch parcial. Si el resultado bloquea agenda se rechequea
// el solapamiento excluyendo la propia cita (así moverla dentro de su hueco
// no choca consigo misma).
func (uc *AppointmentUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil || appt.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}

	if in.EmployeeID != nil {
		appt.EmployeeID = *in.EmployeeID
	}
	if in.ServiceIDs != nil {
		appt.ServiceIDs = *in.ServiceIDs
	}
	if in.ClientName != nil {
		appt.ClientName = *in.ClientName
	}
	if in.ClientPhone != nil {
		appt.ClientPhone = *in.ClientPhone
	}
	if in.ClientID != nil {
		appt.ClientID = *in.ClientID
	}
	if in.Start != nil {
		appt.Start = *in.Start
	}
	if in.End != nil {
		appt.End = *in.End
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		appt.Status = *in.Status
	}
	if !appt.End.After(appt.Start) {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.write(ctx, appt, appt.ID, func(repo repository.AppointmentRepository) error {
		return repo.Update(ctx, appt)
	}); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// write persiste la cita. Si bloquea agenda, el chequeo de solapamiento y la
// escritura corren dentro de la misma transacción.
func (uc *AppointmentUseCase) write(ctx context.Context, appt *entity.Appointment, excludeID string, persist func(repository.AppointmentRepository) error) error {
	if !appt.IsBlocking() {
		return persist(uc.repo)
	}
	return uc.tx.Run(ctx, func(repo repository.AppointmentRepository) error {
		overlap, err := hasOverlapIn(ctx, repo, appt.TenantID, appt.EmployeeID, appt.Start, appt.End, excludeID)
		if err != nil {
			return err
		}
		if overlap {
			return domain.ErrOverlap
		}
		return persist(repo)
	})
}

// Delete elimina la cita si pertenece al tenant.
func (uc *AppointmentUseCase) Delete(ctx context.Context, tenantID, id string) error {
	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt == nil || appt.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// dayBounds devuelve [00:00:00, 23:59:59.999999999] del día de t en su zona.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          a.ID,
		TenantID:    a.TenantID,
		EmployeeID:  a.EmployeeID,
		ServiceIDs:  a.ServiceIDs,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ClientID:    a.ClientID,
		Start:       a.Start,
		End:         a.End,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}
