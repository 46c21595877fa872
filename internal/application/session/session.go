// Package session mantiene el estado de la identidad autenticada actual.
//
// State es una suscripción pasiva al stream de cambios de identidad: el
// proveedor de auth lo alimenta vía Notify y los consumidores solo leen.
// Ready distingue "todavía no se sabe" de "se sabe que no hay sesión": se
// resuelve con la PRIMERA notificación, aunque esta sea nil.
package session

import (
	"context"
	"sync"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/pkg/ready"
)

// State estado de sesión alimentado por notificaciones de identidad.
type State struct {
	mu      sync.RWMutex
	current *entity.Identity
	ready   *ready.Signal
}

// NewState crea el estado sin identidad y sin resolver readiness.
func NewState() *State {
	return &State{ready: ready.New()}
}

// Notify entrega una notificación del stream de identidad (nil = signed out).
// La primera llamada resuelve Ready para todos los que esperan.
func (s *State) Notify(id *entity.Identity) {
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	s.ready.Set()
}

// Ready bloquea hasta que el stream haya disparado al menos una vez.
// Es seguro esperar desde muchos goroutines; todos se liberan juntos.
func (s *State) Ready(ctx context.Context) error {
	return s.ready.Wait(ctx)
}

// IsAuthenticated informa si la última notificación trajo identidad no nula.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Current devuelve la identidad actual o nil.
func (s *State) Current() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Static es una sesión ya resuelta: la usa el adaptador HTTP, donde la
// identidad del request se conoce al parsear el token y no hay que esperar.
type Static struct {
	identity *entity.Identity
}

// NewStatic crea una sesión resuelta con la identidad dada (nil = anónimo).
func NewStatic(id *entity.Identity) *Static {
	return &Static{identity: id}
}

// Ready nunca bloquea: el snapshot ya está resuelto.
func (s *Static) Ready(ctx context.Context) error { return nil }

// IsAuthenticated informa si el snapshot trae identidad.
func (s *Static) IsAuthenticated() bool { return s.identity != nil }

// Current devuelve la identidad del snapshot o nil.
func (s *Static) Current() *entity.Identity { return s.identity }
