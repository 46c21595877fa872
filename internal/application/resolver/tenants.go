package resolver

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
	"github.com/vitta-app/vitta-api/pkg/logger"
)

// TenantResolver responde "¿existe este tenant y está activo?" con cache TTL
// por tenantId. Solo distingue existe / no existe: el "no encontrado" también
// se cachea para no repetir lookups de ids inexistentes.
type TenantResolver struct {
	tenants repository.TenantRepository
	cache   *gocache.Cache
	log     *logger.Logger
}

// NewTenantResolver construye el resolver. ttl <= 0 usa DefaultTTL.
func NewTenantResolver(tenants repository.TenantRepository, ttl time.Duration, log *logger.Logger) *TenantResolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TenantResolver{
		tenants: tenants,
		cache:   gocache.New(ttl, 2*ttl),
		log:     log,
	}
}

// GetTenant devuelve el tenant o nil si no existe. Un id vacío o solo espacios
// corta en nil sin tocar el remoto. Los errores del lookup se tragan y mapean
// a nil SIN cachear, permitiendo el reintento en la siguiente llamada.
func (r *TenantResolver) GetTenant(ctx context.Context, tenantID string) *entity.Tenant {
	if strings.TrimSpace(tenantID) == "" {
		return nil
	}
	if v, ok := r.cache.Get(tenantID); ok {
		return v.(*entity.Tenant)
	}

	tenant, err := r.tenants.GetByID(ctx, tenantID)
	if err != nil {
		r.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("lookup de tenant falló")
		return nil
	}

	// Cachear incluso el nil: evita consultas repetidas por ids inexistentes.
	r.cache.SetDefault(tenantID, tenant)
	return tenant
}

// Invalidate descarta la entrada de un tenant (tras cambiar nombre o estado).
func (r *TenantResolver) Invalidate(tenantID string) {
	r.cache.Delete(tenantID)
}

// InvalidateAll descarta todas las entradas.
func (r *TenantResolver) InvalidateAll() {
	r.cache.Flush()
}
