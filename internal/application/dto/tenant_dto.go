package dto

import "time"

// CreateTenantRequest alta de tenant (el id se normaliza antes de validar).
type CreateTenantRequest struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}

// UpdateTenantNameRequest cambio de nombre visible.
type UpdateTenantNameRequest struct {
	Name string `json:"name"`
}

// SetTenantActiveRequest habilita o deshabilita el tenant.
type SetTenantActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// TenantResponse vista de un tenant.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// TenantListResponse listado de tenants (más recientes primero).
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
}
