package entity

import "time"

// Tenant representa un salón/negocio aislado del sistema. Todo dato de agenda
// (citas, clientes, empleados, servicios) está scopeado a un tenant.
//
// El ID es el identificador normalizado (minúsculas, [a-z0-9-], máx. 50) que
// aparece en las rutas /t/{tenantId}/... — ver internal/domain/tenantid.
type Tenant struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time // asignado por el servidor (now() en el INSERT); zero = desconocido
	CreatedBy string    // uid del owner que lo creó; vacío en tenants legacy
}
