package entity

import "time"

// Client representa la ficha de un cliente del salón (scopeada por tenant).
// No hay FK hacia appointments: una cita puede referenciar un ClientID que ya
// no existe y el sistema lo tolera.
type Client struct {
	ID        string
	TenantID  string
	Name      string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
}
