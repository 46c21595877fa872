// Package booking contiene las reglas puras de agenda: la definición de
// solapamiento entre intervalos de citas.
package booking

import (
	"time"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// Overlaps informa si los intervalos semiabiertos [s1, e1) y [s2, e2) se
// intersectan: s1 < e2 && e1 > s2. Citas espalda con espalda (el fin de una
// igual al inicio de la otra) NO se solapan.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// ConflictsWith informa si una ventana propuesta [start, end) choca con la
// cita existente. Se ignoran la cita excluida (actualizaciones sobre sí misma)
// y las citas cuyo estado no bloquea agenda (cancelled, no-show).
func ConflictsWith(a *entity.Appointment, start, end time.Time, excludeID string) bool {
	if excludeID != "" && a.ID == excludeID {
		return false
	}
	if !a.IsBlocking() {
		return false
	}
	return Overlaps(start, end, a.Start, a.End)
}
