package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vitta-app/vitta-api/internal/application/guard"
	"github.com/vitta-app/vitta-api/internal/application/session"
)

// GuardFunc es uno de los guards de la cadena (RequireAuth, RequireOwner,
// RequireTenantAndAuth...) parcialmente aplicado al receptor Chain.
type GuardFunc func(ctx context.Context, sess guard.Session, target string) guard.Result

// GuardMiddleware traduce un guard de navegación a middleware Fiber: arma la
// sesión del request desde el token opcional, evalúa el guard contra el
// destino y responde 302 con la ruta de redirección cuando no permite.
//
// El destino que ven los guards es la URL sin el prefijo /api: los paths de
// redirección (login, access-denied...) viven en el espacio de navegación del
// cliente, no en el de la API.
func GuardMiddleware(jwtSecret string, fn GuardFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := session.NewStatic(identityFromRequest(c, jwtSecret))
		target := strings.TrimPrefix(c.OriginalURL(), "/api")
		res := fn(c.Context(), sess, target)
		if !res.Allowed() {
			return c.Redirect(res.Redirect(), fiber.StatusFound)
		}
		return c.Next()
	}
}
