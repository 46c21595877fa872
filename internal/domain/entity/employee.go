package entity

import "time"

// Employee representa un empleado del salón (scopeado por tenant).
type Employee struct {
	ID        string
	TenantID  string
	Name      string
	Email     string
	Phone     string
	Notes     string
	CreatedAt time.Time
}
