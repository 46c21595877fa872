package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitta-app/vitta-api/internal/application/theme"
)

// BrandingHandler sirve la paleta por tenant. Rutas públicas: la pantalla de
// login necesita el tema antes de que exista sesión.
type BrandingHandler struct {
	themes *theme.Resolver
}

// NewBrandingHandler construye el handler.
func NewBrandingHandler(themes *theme.Resolver) *BrandingHandler {
	return &BrandingHandler{themes: themes}
}

// Theme GET /branding/:tenantId/theme.json
func (h *BrandingHandler) Theme(c *fiber.Ctx) error {
	return c.JSON(h.themes.Load(c.Params("tenantId")))
}

// VariablesCSS GET /branding/:tenantId/variables.css
func (h *BrandingHandler) VariablesCSS(c *fiber.Ctx) error {
	t := h.themes.Load(c.Params("tenantId"))
	c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
	return c.SendString(theme.VariablesCSS(t))
}
