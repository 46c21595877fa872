package dto

import "time"

// CreateAppointmentRequest alta de cita. Status vacío = confirmed.
type CreateAppointmentRequest struct {
	EmployeeID  string    `json:"employee_id"`
	ServiceIDs  []string  `json:"service_ids"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientID    string    `json:"client_id,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status,omitempty"`
}

// UpdateAppointmentRequest actualización parcial: solo los campos presentes
// (punteros no nulos) se aplican sobre la cita existente.
type UpdateAppointmentRequest struct {
	EmployeeID  *string    `json:"employee_id,omitempty"`
	ServiceIDs  *[]string  `json:"service_ids,omitempty"`
	ClientName  *string    `json:"client_name,omitempty"`
	ClientPhone *string    `json:"client_phone,omitempty"`
	ClientID    *string    `json:"client_id,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// AppointmentResponse vista de una cita.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	EmployeeID  string    `json:"employee_id"`
	ServiceIDs  []string  `json:"service_ids"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientID    string    `json:"client_id,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// AppointmentListResponse listado de citas ordenadas por inicio.
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
}
