package entity

import "time"

// Owner marca a una identidad como administradora global de la plataforma
// (puede crear/gestionar tenants fuera del scope de cualquier salón).
// La existencia de la fila ES el rol: no hay niveles ni flags adicionales.
type Owner struct {
	UID       string
	Email     string
	GrantedAt time.Time
}
