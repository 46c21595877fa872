// Package guard implementa la cadena de admisión de navegación: cada guard
// decide Allow o RedirectTo(path) para un destino, tras esperar a que el
// router y la sesión estén listos.
//
// El resultado es neutral al framework de navegación: los adaptadores
// (middleware Fiber, shells de cliente) traducen Result a su convención
// resolve/reject o next propia.
package guard

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// Result decisión de un guard: permitir o redirigir.
type Result struct {
	redirect string
}

// Allow permite la navegación.
func Allow() Result { return Result{} }

// RedirectTo redirige la navegación al path indicado.
func RedirectTo(path string) Result { return Result{redirect: path} }

// Allowed informa si la navegación procede.
func (r Result) Allowed() bool { return r.redirect == "" }

// Redirect devuelve el destino de redirección ("" si Allowed).
func (r Result) Redirect() string { return r.redirect }

// Session es lo que la cadena necesita saber de la sesión: readiness one-shot
// e identidad actual. Lo implementan session.State y session.Static.
type Session interface {
	Ready(ctx context.Context) error
	IsAuthenticated() bool
	Current() *entity.Identity
}

// RoleChecker responde si un uid es owner. El resolver ya es fail-closed:
// devuelve false ante fallos remotos.
type RoleChecker interface {
	IsOwner(ctx context.Context, uid string) bool
}

// TenantGetter resuelve un tenant por id (nil si no existe o el lookup falla).
type TenantGetter interface {
	GetTenant(ctx context.Context, tenantID string) *entity.Tenant
}

// tenantPathPattern rutas scopeadas: /t/<tenantId>/...
var tenantPathPattern = regexp.MustCompile(`^/t/([^/]+)`)

// TenantIDFromPath extrae el tenantId de una ruta /t/{tenantId}/... o ""
// si la ruta no está scopeada a un tenant.
func TenantIDFromPath(path string) string {
	m := tenantPathPattern.FindStringSubmatch(path)
	if m == nil {
		return ""
	}
	id := strings.TrimSpace(m[1])
	return id
}

// withRedirect agrega ?redirect=<target URL-encoded> a un path de login.
func withRedirect(loginPath, target string) string {
	sep := "?"
	if strings.Contains(loginPath, "?") {
		sep = "&"
	}
	return loginPath + sep + "redirect=" + url.QueryEscape(target)
}
