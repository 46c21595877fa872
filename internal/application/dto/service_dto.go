package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest alta de servicio del salón.
type CreateServiceRequest struct {
	Name        string          `json:"name"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateServiceRequest actualización de servicio.
type UpdateServiceRequest struct {
	Name        string          `json:"name"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`
}

// ServiceResponse vista de un servicio.
type ServiceResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	Name        string          `json:"name"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ServiceListResponse listado de servicios.
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
}
