// Package resolver contiene los resolvers cacheados de rol (owner) y tenant.
//
// Ambos siguen la misma política: cache TTL propio del componente (nada de
// singletons a nivel de módulo), se cachean también los resultados negativos,
// y los fallos del lookup remoto NO se cachean para permitir reintentos.
package resolver

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vitta-app/vitta-api/internal/domain/repository"
	"github.com/vitta-app/vitta-api/pkg/logger"
)

// DefaultTTL ventana de frescura de las entradas de cache.
const DefaultTTL = 5 * time.Minute

// RoleResolver responde "¿esta identidad es owner?" con cache TTL por uid.
type RoleResolver struct {
	owners repository.OwnerRepository
	cache  *gocache.Cache
	log    *logger.Logger
}

// NewRoleResolver construye el resolver. ttl <= 0 usa DefaultTTL.
func NewRoleResolver(owners repository.OwnerRepository, ttl time.Duration, log *logger.Logger) *RoleResolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RoleResolver{
		owners: owners,
		cache:  gocache.New(ttl, 2*ttl),
		log:    log,
	}
}

// IsOwner informa si existe un registro de owner para el uid. En cache miss
// hace el lookup remoto y cachea el booleano (también el negativo). Si el
// lookup falla devuelve false (fail-closed) SIN cachear, para que la próxima
// llamada reintente.
func (r *RoleResolver) IsOwner(ctx context.Context, uid string) bool {
	if uid == "" {
		return false
	}
	if v, ok := r.cache.Get(uid); ok {
		return v.(bool)
	}

	exists, err := r.owners.Exists(ctx, uid)
	if err != nil {
		r.log.Warn().Err(err).Str("uid", uid).Msg("lookup de owner falló; se asume no-owner")
		return false
	}

	r.cache.SetDefault(uid, exists)
	return exists
}

// Invalidate descarta la entrada de un uid. Necesario tras conceder o revocar
// el rol por fuera (el cache no tiene invalidación push).
func (r *RoleResolver) Invalidate(uid string) {
	r.cache.Delete(uid)
}

// InvalidateAll descarta todas las entradas.
func (r *RoleResolver) InvalidateAll() {
	r.cache.Flush()
}
