package dto

import "time"

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// UpdateEmployeeRequest actualización de empleado.
type UpdateEmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// EmployeeResponse vista de un empleado.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeListResponse listado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
}
