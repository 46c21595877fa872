package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/vitta-app/vitta-api/internal/application/guard"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	apphttp "github.com/vitta-app/vitta-api/internal/interfaces/http"
	"github.com/vitta-app/vitta-api/pkg/config"
	"github.com/vitta-app/vitta-api/pkg/logger"
	"github.com/vitta-app/vitta-api/pkg/ready"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de resolvers para armar la cadena de guards
// ──────────────────────────────────────────────────────────────────────────────

type fakeRoles struct{ owners map[string]bool }

func (f fakeRoles) IsOwner(_ context.Context, uid string) bool { return f.owners[uid] }

type fakeTenants struct{ tenants map[string]*entity.Tenant }

func (f fakeTenants) GetTenant(_ context.Context, id string) *entity.Tenant { return f.tenants[id] }

var guardPaths = config.GuardConfig{
	GlobalLoginPath:  "/controlPanel/login/",
	TenantLoginPath:  "/t/%s/login/",
	AccessDeniedPath: "/access-denied/",
	TenantNotFound:   "/tenant-not-found/",
	TenantDisabled:   "/tenant-disabled/",
}

func testChain(roles fakeRoles, tenants fakeTenants) *guard.Chain {
	sig := ready.New()
	sig.Set()
	return guard.NewChain(sig, roles, tenants, guardPaths, logger.Nop())
}

// buildGuardedApp monta la topología real de rutas: el scope del tenant con
// guard + auth y el scope de owner con guard de owner.
func buildGuardedApp(chain *guard.Chain) *fiber.App {
	app := fiber.New()

	tenantScope := app.Group("/api/t/:tenantId",
		apphttp.GuardMiddleware(testJWTSecret, chain.RequireTenantAndAuth),
		apphttp.AuthMiddleware(testJWTSecret),
	)
	tenantScope.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"tenant": c.Params("tenantId"), "uid": apphttp.GetUID(c)})
	})

	ownerScope := app.Group("/api/tenants",
		apphttp.GuardMiddleware(testJWTSecret, chain.RequireOwner),
		apphttp.AuthMiddleware(testJWTSecret),
	)
	ownerScope.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	return app
}

func activeTenants(ids ...string) fakeTenants {
	m := make(map[string]*entity.Tenant, len(ids))
	for _, id := range ids {
		m[id] = &entity.Tenant{ID: id, Name: id, IsActive: true}
	}
	return fakeTenants{tenants: m}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GuardMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: anónimo sobre ruta de tenant → 302 al login del tenant con el destino
// (sin el prefijo /api) en ?redirect=.
func TestGuardMiddleware_AnonimoRedirigeAlLoginDelTenant(t *testing.T) {
	app := buildGuardedApp(testChain(fakeRoles{}, activeTenants("acme")))

	resp := doRequest(t, app, "/api/t/acme/ping", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/t/acme/login/?redirect=%2Ft%2Facme%2Fping",
		resp.Header.Get("Location"),
		"el redirect viaja en el espacio de navegación, no en el de la API")
}

// Caso 2: autenticado sobre tenant activo → pasa el guard y el auth middleware.
func TestGuardMiddleware_AutenticadoSobreTenantActivo(t *testing.T) {
	app := buildGuardedApp(testChain(fakeRoles{}, activeTenants("acme")))

	resp := doRequest(t, app, "/api/t/acme/ping", validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: tenant inexistente → 302 a tenant-not-found aunque haya sesión.
func TestGuardMiddleware_TenantInexistente(t *testing.T) {
	app := buildGuardedApp(testChain(fakeRoles{}, activeTenants()))

	resp := doRequest(t, app, "/api/t/fantasma/ping", validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tenant-not-found/", resp.Header.Get("Location"))
}

// Caso 4: tenant deshabilitado gana sobre la falta de sesión.
func TestGuardMiddleware_TenantDeshabilitado(t *testing.T) {
	tenants := fakeTenants{tenants: map[string]*entity.Tenant{
		"cerrado": {ID: "cerrado", IsActive: false},
	}}
	app := buildGuardedApp(testChain(fakeRoles{}, tenants))

	resp := doRequest(t, app, "/api/t/cerrado/ping", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tenant-disabled/", resp.Header.Get("Location"),
		"el estado del tenant se evalúa antes que la sesión")
}

// Caso 5: el scope de owners exige el rol; un autenticado sin rol va a
// access-denied y un owner pasa.
func TestGuardMiddleware_ScopeDeOwner(t *testing.T) {
	roles := fakeRoles{owners: map[string]bool{testUserID: true}}
	app := buildGuardedApp(testChain(roles, activeTenants()))

	resp := doRequest(t, app, "/api/tenants/", validToken(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	appNoOwner := buildGuardedApp(testChain(fakeRoles{}, activeTenants()))
	resp = doRequest(t, appNoOwner, "/api/tenants/", validToken(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/access-denied/", resp.Header.Get("Location"))
}

// Caso 6: anónimo en el scope de owner → login global.
func TestGuardMiddleware_AnonimoEnScopeDeOwner(t *testing.T) {
	app := buildGuardedApp(testChain(fakeRoles{}, activeTenants()))

	resp := doRequest(t, app, "/api/tenants/", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/controlPanel/login/?redirect=%2Ftenants%2F",
		resp.Header.Get("Location"))
}
