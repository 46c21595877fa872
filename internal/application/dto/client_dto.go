package dto

import "time"

// CreateClientRequest alta de ficha de cliente.
type CreateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// UpdateClientRequest actualización de ficha (reemplazo de campos editables).
type UpdateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ClientResponse vista de una ficha de cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientListResponse listado de fichas.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
}
