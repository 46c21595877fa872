package entity

import "time"

// Estados válidos de una cita. Solo pending y confirmed participan en la
// restricción de no-solapamiento; cancelled y no-show quedan fuera.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Appointment representa una cita agendada para un empleado de un tenant.
// El intervalo [Start, End) es semiabierto: una cita que termina exactamente
// cuando empieza otra NO se solapa con ella.
type Appointment struct {
	ID          string
	TenantID    string
	EmployeeID  string
	ServiceIDs  []string
	ClientName  string
	ClientPhone string
	ClientID    string // opcional: enlace a la colección clients; vacío si no hay ficha
	Start       time.Time
	End         time.Time
	Status      string // ver constantes Status*
	CreatedAt   time.Time
}

// IsBlocking informa si la cita cuenta para el chequeo de solapamiento.
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// ValidStatus informa si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
