package guard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vitta-app/vitta-api/pkg/config"
	"github.com/vitta-app/vitta-api/pkg/logger"
	"github.com/vitta-app/vitta-api/pkg/ready"
)

// Chain compone sesión, resolvers y señal de router en los guards de
// navegación. Una sola implementación parametrizada por configuración de
// rutas, en vez de copias por shell.
type Chain struct {
	routerReady *ready.Signal
	roles       RoleChecker
	tenants     TenantGetter
	paths       config.GuardConfig
	log         *logger.Logger
}

// NewChain construye la cadena.
func NewChain(routerReady *ready.Signal, roles RoleChecker, tenants TenantGetter, paths config.GuardConfig, log *logger.Logger) *Chain {
	return &Chain{
		routerReady: routerReady,
		roles:       roles,
		tenants:     tenants,
		paths:       paths,
		log:         log,
	}
}

// awaitReady espera en paralelo a que el router y la sesión estén listos.
// Evita la carrera de un guard disparando antes de que la capa de navegación
// o la de auth hayan inicializado.
func (c *Chain) awaitReady(ctx context.Context, sess Session) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.routerReady.Wait(ctx) })
	g.Go(func() error { return sess.Ready(ctx) })
	return g.Wait()
}

// loginPathFor elige el login scopeado al tenant si el destino lo trae, o el
// global, siempre con el destino URL-encoded en ?redirect=.
func (c *Chain) loginPathFor(target string) string {
	if tenantID := TenantIDFromPath(target); tenantID != "" {
		return withRedirect(c.paths.TenantLogin(tenantID), target)
	}
	return withRedirect(c.paths.GlobalLoginPath, target)
}

// RequireAuth exige sesión autenticada; si no la hay redirige al login
// (scopeado al tenant cuando el destino es /t/{tenantId}/...).
func (c *Chain) RequireAuth(ctx context.Context, sess Session, target string) Result {
	if err := c.awaitReady(ctx, sess); err != nil {
		c.log.Warn().Err(err).Str("target", target).Msg("guard interrumpido esperando readiness")
		return RedirectTo(c.loginPathFor(target))
	}
	if !sess.IsAuthenticated() {
		return RedirectTo(c.loginPathFor(target))
	}
	return Allow()
}

// RequireOwner exige sesión autenticada Y rol de owner. La ruta de login aquí
// es siempre la global (el panel de control no vive bajo /t/). No-owner y
// fallo del resolver terminan ambos en access-denied (fail-closed).
func (c *Chain) RequireOwner(ctx context.Context, sess Session, target string) Result {
	if err := c.awaitReady(ctx, sess); err != nil {
		c.log.Warn().Err(err).Str("target", target).Msg("guard interrumpido esperando readiness")
		return RedirectTo(withRedirect(c.paths.GlobalLoginPath, target))
	}
	if !sess.IsAuthenticated() {
		return RedirectTo(withRedirect(c.paths.GlobalLoginPath, target))
	}
	identity := sess.Current()
	if identity == nil {
		return RedirectTo(withRedirect(c.paths.GlobalLoginPath, target))
	}
	if !c.roles.IsOwner(ctx, identity.UID) {
		return RedirectTo(c.paths.AccessDeniedPath)
	}
	return Allow()
}

// RequireTenant valida que el tenant del destino exista y esté activo.
// Destinos sin tenant en la ruta pasan sin chequeo (guard no-op).
func (c *Chain) RequireTenant(ctx context.Context, sess Session, target string) Result {
	if err := c.awaitReady(ctx, sess); err != nil {
		c.log.Warn().Err(err).Str("target", target).Msg("guard interrumpido esperando readiness")
		return RedirectTo(c.paths.TenantNotFound)
	}
	tenantID := TenantIDFromPath(target)
	if tenantID == "" {
		return Allow()
	}
	tenant := c.tenants.GetTenant(ctx, tenantID)
	if tenant == nil {
		return RedirectTo(c.paths.TenantNotFound)
	}
	if !tenant.IsActive {
		return RedirectTo(c.paths.TenantDisabled)
	}
	return Allow()
}

// RequireTenantAndAuth ejecuta primero el guard de tenant y solo si este
// permite evalúa el de auth: un tenant inexistente o deshabilitado nunca debe
// filtrar un mensaje de acceso-denegado-por-auth en su lugar.
func (c *Chain) RequireTenantAndAuth(ctx context.Context, sess Session, target string) Result {
	if res := c.RequireTenant(ctx, sess, target); !res.Allowed() {
		return res
	}
	return c.RequireAuth(ctx, sess, target)
}
