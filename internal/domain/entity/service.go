package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service representa un servicio ofrecido por el salón (corte, tinte, ...).
type Service struct {
	ID          string
	TenantID    string
	Name        string
	DurationMin int             // duración estimada en minutos
	Price       decimal.Decimal // NUMERIC en DB vía pgx-shopspring-decimal
	CreatedAt   time.Time
}
