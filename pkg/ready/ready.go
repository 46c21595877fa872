// Package ready implementa una señal one-shot: se dispara exactamente una vez
// y libera a todos los que esperan, hayan llegado antes o después del disparo.
// Se usa para "router listo" y "sesión lista" en la cadena de guards.
package ready

import (
	"context"
	"sync"
)

// Signal latch de un solo disparo. El valor cero no es utilizable; crear con New.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// New crea la señal sin disparar.
func New() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Set dispara la señal. Llamadas posteriores no tienen efecto.
func (s *Signal) Set() {
	s.once.Do(func() { close(s.ch) })
}

// Done informa si la señal ya fue disparada, sin bloquear.
func (s *Signal) Done() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Wait bloquea hasta que la señal se dispare o el contexto se cancele.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
