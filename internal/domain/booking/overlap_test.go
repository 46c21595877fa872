package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vitta-app/vitta-api/internal/domain/booking"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

func at(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2026-08-29 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"intervalos disjuntos", "09:00", "10:00", "11:00", "12:00", false},
		{"solape parcial", "10:30", "11:30", "11:00", "12:00", true},
		{"espalda con espalda no solapa", "10:00", "11:00", "11:00", "12:00", false},
		{"espalda con espalda invertido", "11:00", "12:00", "10:00", "11:00", false},
		{"uno contiene al otro", "10:00", "12:00", "10:30", "11:00", true},
		{"intervalos idénticos", "10:00", "11:00", "10:00", "11:00", true},
		{"toca solo el inicio", "09:00", "10:01", "10:00", "11:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.Overlaps(at(tc.s1), at(tc.e1), at(tc.s2), at(tc.e2))
			assert.Equal(t, tc.want, got)
			// La relación es simétrica.
			assert.Equal(t, tc.want, booking.Overlaps(at(tc.s2), at(tc.e2), at(tc.s1), at(tc.e1)))
		})
	}
}

func TestConflictsWith_EstadosNoBloqueantes(t *testing.T) {
	appt := &entity.Appointment{
		ID:    "a1",
		Start: at("10:00"),
		End:   at("11:00"),
	}

	for _, status := range []string{entity.StatusCancelled, entity.StatusNoShow} {
		appt.Status = status
		assert.False(t, booking.ConflictsWith(appt, at("10:00"), at("11:00"), ""),
			"una cita %s no debe bloquear agenda", status)
	}
	for _, status := range []string{entity.StatusPending, entity.StatusConfirmed} {
		appt.Status = status
		assert.True(t, booking.ConflictsWith(appt, at("10:30"), at("11:30"), ""),
			"una cita %s debe bloquear agenda", status)
	}
}

func TestConflictsWith_ExcluyeLaPropiaCita(t *testing.T) {
	appt := &entity.Appointment{
		ID:     "a1",
		Start:  at("10:00"),
		End:    at("11:00"),
		Status: entity.StatusConfirmed,
	}

	// Mover la cita dentro de su propio hueco no choca consigo misma.
	assert.False(t, booking.ConflictsWith(appt, at("10:15"), at("10:45"), "a1"))
	// Pero otra cita en el mismo hueco sí.
	assert.True(t, booking.ConflictsWith(appt, at("10:15"), at("10:45"), "otro-id"))
}
