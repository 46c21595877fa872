// Package agenda arma la agenda diaria de un tenant (citas del día con
// nombres resueltos de empleado y servicios) y delega el render a un
// generador de PDF inyectado.
package agenda

import (
	"context"
	"sort"
	"time"

	"github.com/vitta-app/vitta-api/internal/domain"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

// Entry una cita ya resuelta para render: ids traducidos a nombres.
type Entry struct {
	Start        time.Time
	End          time.Time
	ClientName   string
	ClientPhone  string
	EmployeeName string
	Services     []string
	Status       string
}

// Day la agenda completa de un día para un tenant.
type Day struct {
	Tenant  *entity.Tenant
	Date    time.Time
	Entries []Entry
}

// PDFGenerator puerto de render; la implementación vive en infraestructura.
type PDFGenerator interface {
	GenerateAgendaPDF(ctx context.Context, day *Day) ([]byte, error)
}

// UseCase construye la agenda diaria.
type UseCase struct {
	tenants      repository.TenantRepository
	appointments repository.AppointmentRepository
	employees    repository.EmployeeRepository
	services     repository.ServiceRepository
	gen          PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	tenants repository.TenantRepository,
	appointments repository.AppointmentRepository,
	employees repository.EmployeeRepository,
	services repository.ServiceRepository,
	gen PDFGenerator,
) *UseCase {
	return &UseCase{
		tenants:      tenants,
		appointments: appointments,
		employees:    employees,
		services:     services,
		gen:          gen,
	}
}

// DailyPDF genera el PDF de agenda del día indicado. Las citas canceladas y
// los no-show se incluyen (el salón quiere verlos tachados, no ocultos).
func (uc *UseCase) DailyPDF(ctx context.Context, tenantID string, date time.Time) ([]byte, error) {
	day, err := uc.BuildDay(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateAgendaPDF(ctx, day)
}

// BuildDay resuelve citas, empleados y servicios del día y los ordena por
// hora de inicio.
func (uc *UseCase) BuildDay(ctx context.Context, tenantID string, date time.Time) (*Day, error) {
	tenant, err := uc.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrTenantNotFound
	}

	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)
	appts, err := uc.appointments.ListByTenantAndRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	employeeNames, err := uc.employeeNames(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	serviceNames, err := uc.serviceNames(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(appts))
	for _, a := range appts {
		entry := Entry{
			Start:        a.Start,
			End:          a.End,
			ClientName:   a.ClientName,
			ClientPhone:  a.ClientPhone,
			EmployeeName: employeeNames[a.EmployeeID],
			Status:       a.Status,
		}
		if entry.EmployeeName == "" {
			entry.EmployeeName = a.EmployeeID // empleado borrado: mostrar el id
		}
		for _, sid := range a.ServiceIDs {
			if name := serviceNames[sid]; name != "" {
				entry.Services = append(entry.Services, name)
			} else {
				entry.Services = append(entry.Services, sid)
			}
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})

	return &Day{Tenant: tenant, Date: from, Entries: entries}, nil
}

func (uc *UseCase) employeeNames(ctx context.Context, tenantID string) (map[string]string, error) {
	employees, err := uc.employees.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names, nil
}

func (uc *UseCase) serviceNames(ctx context.Context, tenantID string) (map[string]string, error) {
	services, err := uc.services.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(services))
	for _, s := range services {
		names[s.ID] = s.Name
	}
	return names, nil
}
