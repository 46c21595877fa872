package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

// fakeApptRepo repositorio de citas en memoria para los tests del caso de uso.
type fakeApptRepo struct {
	appts   map[string]*entity.Appointment
	listErr error
}

func newFakeApptRepo(seed ...*entity.Appointment) *fakeApptRepo {
	r := &fakeApptRepo{appts: make(map[string]*entity.Appointment)}
	for _, a := range seed {
		r.appts[a.ID] = a
	}
	return r
}

func (r *fakeApptRepo) Create(_ context.Context, appt *entity.Appointment) error {
	r.appts[appt.ID] = appt
	return nil
}

func (r *fakeApptRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	return r.appts[id], nil
}

func (r *fakeApptRepo) Update(_ context.Context, appt *entity.Appointment) error {
	r.appts[appt.ID] = appt
	return nil
}

func (r *fakeApptRepo) Delete(_ context.Context, id string) error {
	delete(r.appts, id)
	return nil
}

func (r *fakeApptRepo) ListByTenantAndEmployee(_ context.Context, tenantID, employeeID string) ([]*entity.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Appointment
	for _, a := range r.appts {
		if a.TenantID == tenantID && a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) ListByTenantAndRange(_ context.Context, tenantID string, from, to time.Time) ([]*entity.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Appointment
	for _, a := range r.appts {
		if a.TenantID == tenantID && !a.Start.Before(from) && !a.Start.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta fn directamente contra el repo (sin transacción real).
type fakeTxRunner struct {
	repo repository.AppointmentRepository
	runs int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.AppointmentRepository) error) error {
	f.runs++
	return fn(f.repo)
}

func hour(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2026-08-29 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func buildUC(seed ...*entity.Appointment) (*usecase.AppointmentUseCase, *fakeApptRepo, *fakeTxRunner) {
	repo := newFakeApptRepo(seed...)
	tx := &fakeTxRunner{repo: repo}
	return usecase.NewAppointmentUseCase(repo, tx), repo, tx
}

func existing(id, status string, start, end time.Time) *entity.Appointment {
	return &entity.Appointment{
		ID:         id,
		TenantID:   "acme",
		EmployeeID: "emp1",
		Start:      start,
		End:        end,
		Status:     status,
	}
}

// ─── Create ──────────────────────────────────────────────────────────────────

func TestCreate_CitaValida(t *testing.T) {
	uc, repo, tx := buildUC()

	got, err := uc.Create(context.Background(), "acme", dto.CreateAppointmentRequest{
		EmployeeID: "emp1",
		ClientName: "Ana",
		Start:      hour("10:00"),
		End:        hour("11:00"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "acme", got.TenantID)
	assert.Equal(t, entity.StatusConfirmed, got.Status, "status vacío se asume confirmed")
	assert.Len(t, repo.appts, 1)
	assert.Equal(t, 1, tx.runs, "una cita que bloquea agenda se escribe en transacción")
}

func TestCreate_SolapeDevuelveErrOverlap(t *testing.T) {
	uc, repo, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))

	_, err := uc.Create(context.Background(), "acme", dto.CreateAppointmentRequest{
		EmployeeID: "emp1",
		Start:      hour("10:30"),
		End:        hour("11:30"),
	})

	assert.ErrorIs(t, err, domain.ErrOverlap)
	assert.Len(t, repo.appts, 1, "la cita en conflicto no se persiste")
}

func TestCreate_EspaldaConEspaldaNoChoca(t *testing.T) {
	uc, repo, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))

	_, err := uc.Create(context.Background(), "acme", dto.CreateAppointmentRequest{
		EmployeeID: "emp1",
		Start:      hour("11:00"),
		End:        hour("12:00"),
	})

	require.NoError(t, err, "intervalo semiabierto: 11:00 fin toca 11:00 inicio")
	assert.Len(t, repo.appts, 2)
}

func TestCreate_CanceladaNoChequeaSolape(t *testing.T) {
	uc, _, tx := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))

	got, err := uc.Create(context.Background(), "acme", dto.CreateAppointmentRequest{
		EmployeeID: "emp1",
		Start:      hour("10:00"),
		End:        hour("11:00"),
		Status:     entity.StatusCancelled,
	})

	require.NoError(t, err, "una cita cancelada puede coexistir con cualquier horario")
	assert.Equal(t, entity.StatusCancelled, got.Status)
	assert.Zero(t, tx.runs, "las no bloqueantes se escriben fuera de la transacción")
}

func TestCreate_SobreCitaCanceladaNoChoca(t *testing.T) {
	uc, _, _ := buildUC(existing("a1", entity.StatusCancelled, hour("10:00"), hour("11:00")))

	_, err := uc.Create(context.Background(), "acme", dto.CreateAppointmentRequest{
		EmployeeID: "emp1",
		Start:      hour("10:00"),
		End:        hour("11:00"),
	})

	assert.NoError(t, err, "el hueco de una cancelada queda libre")
}

func TestCreate_OtroEmpleadoNoChoca(t *testing.T) {
	uc, _, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))

	_, err := uc.Create(context.Background(), "acme", dto.CreateAppointmentRequest{
		EmployeeID: "emp2",
		Start:      hour("10:00"),
		End:        hour("11:00"),
	})

	assert.NoError(t, err, "el solapamiento es por empleado, no por tenant")
}

func TestCreate_EntradasInvalidas(t *testing.T) {
	uc, _, _ := buildUC()
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateAppointmentRequest
	}{
		{"sin empleado", dto.CreateAppointmentRequest{Start: hour("10:00"), End: hour("11:00")}},
		{"fin antes del inicio", dto.CreateAppointmentRequest{EmployeeID: "emp1", Start: hour("11:00"), End: hour("10:00")}},
		{"fin igual al inicio", dto.CreateAppointmentRequest{EmployeeID: "emp1", Start: hour("10:00"), End: hour("10:00")}},
		{"status desconocido", dto.CreateAppointmentRequest{EmployeeID: "emp1", Start: hour("10:00"), End: hour("11:00"), Status: "archived"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, "acme", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_ErrorDelRepositorioPropaga(t *testing.T) {
	uc, repo, _ := buildUC()
	repo.listErr = errors.New("conexión caída")

	_, err := uc.Create(context.Background(), "acme", dto.CreateAppointmentRequest{
		EmployeeID: "emp1",
		Start:      hour("10:00"),
		End:        hour("11:00"),
	})

	assert.Error(t, err, "sin chequeo de solape confiable no se permite reservar")
	assert.NotErrorIs(t, err, domain.ErrOverlap)
}

// ─── HasOverlap ──────────────────────────────────────────────────────────────

func TestHasOverlap(t *testing.T) {
	uc, _, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))
	ctx := context.Background()

	overlap, err := uc.HasOverlap(ctx, "acme", "emp1", hour("10:30"), hour("11:30"), "")
	require.NoError(t, err)
	assert.True(t, overlap)

	overlap, err = uc.HasOverlap(ctx, "acme", "emp1", hour("11:00"), hour("12:00"), "")
	require.NoError(t, err)
	assert.False(t, overlap)

	// Excluyendo la propia cita, su hueco queda libre.
	overlap, err = uc.HasOverlap(ctx, "acme", "emp1", hour("10:00"), hour("11:00"), "a1")
	require.NoError(t, err)
	assert.False(t, overlap)
}

// ─── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_MoverDentroDelPropioHueco(t *testing.T) {
	uc, repo, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))

	start, end := hour("10:15"), hour("10:45")
	got, err := uc.Update(context.Background(), "acme", "a1", dto.UpdateAppointmentRequest{
		Start: &start,
		End:   &end,
	})

	require.NoError(t, err, "la cita no choca consigo misma al moverse")
	assert.Equal(t, start, got.Start)
	assert.Equal(t, start, repo.appts["a1"].Start)
}

func TestUpdate_MoverSobreOtraCitaChoca(t *testing.T) {
	uc, _, _ := buildUC(
		existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")),
		existing("a2", entity.StatusConfirmed, hour("12:00"), hour("13:00")),
	)

	start, end := hour("10:30"), hour("11:30")
	_, err := uc.Update(context.Background(), "acme", "a2", dto.UpdateAppointmentRequest{
		Start: &start,
		End:   &end,
	})

	assert.ErrorIs(t, err, domain.ErrOverlap)
}

func TestUpdate_CancelarLiberaElHueco(t *testing.T) {
	uc, _, tx := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))

	cancelled := entity.StatusCancelled
	_, err := uc.Update(context.Background(), "acme", "a1", dto.UpdateAppointmentRequest{
		Status: &cancelled,
	})
	require.NoError(t, err)
	assert.Zero(t, tx.runs, "cancelar no requiere chequeo de solape")

	// El hueco liberado acepta una cita nueva.
	_, err = uc.Create(context.Background(), "acme", dto.CreateAppointmentRequest{
		EmployeeID: "emp1",
		Start:      hour("10:00"),
		End:        hour("11:00"),
	})
	assert.NoError(t, err)
}

func TestUpdate_DeOtroTenantEsNotFound(t *testing.T) {
	uc, _, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))

	name := "Eva"
	_, err := uc.Update(context.Background(), "otro-salon", "a1", dto.UpdateAppointmentRequest{
		ClientName: &name,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound, "una cita ajena no se revela: not found")
}

// ─── GetByID / Delete / listados ─────────────────────────────────────────────

func TestGetByID_AislamientoPorTenant(t *testing.T) {
	uc, _, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))
	ctx := context.Background()

	got, err := uc.GetByID(ctx, "acme", "a1")
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = uc.GetByID(ctx, "otro-salon", "a1")
	require.NoError(t, err)
	assert.Nil(t, got, "desde otro tenant la cita no existe")
}

func TestDelete(t *testing.T) {
	uc, repo, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("10:00"), hour("11:00")))
	ctx := context.Background()

	assert.ErrorIs(t, uc.Delete(ctx, "otro-salon", "a1"), domain.ErrNotFound)
	require.NoError(t, uc.Delete(ctx, "acme", "a1"))
	assert.Empty(t, repo.appts)
}

func TestListByDate_CubreElDiaCompleto(t *testing.T) {
	uc, _, _ := buildUC(
		existing("a1", entity.StatusConfirmed, hour("00:30"), hour("01:00")),
		existing("a2", entity.StatusConfirmed, hour("23:00"), hour("23:45")),
	)

	list, err := uc.ListByDate(context.Background(), "acme", hour("12:00"))
	require.NoError(t, err)
	assert.Len(t, list.Items, 2, "el filtro de día va de 00:00 a 24:00")
}

func TestListByRange_ExtiendeLosExtremosADiaCompleto(t *testing.T) {
	uc, _, _ := buildUC(existing("a1", entity.StatusConfirmed, hour("23:00"), hour("23:45")))

	// from/to con hora intermedia: el extremo superior se extiende al fin del día.
	list, err := uc.ListByRange(context.Background(), "acme", hour("08:00"), hour("12:00"))
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}
