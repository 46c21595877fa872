package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vitta-app/vitta-api/internal/application/dto"
	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/pkg/jwt"
)

// Locals keys para UID y Email en Fiber.
const (
	LocalUID   = "uid"
	LocalEmail = "email"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UID y Email a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		uid, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUID, uid)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetUID devuelve el UID del contexto (después del middleware de auth).
func GetUID(c *fiber.Ctx) string {
	v := c.Locals(LocalUID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// identityFromRequest parsea el Bearer token si viene y devuelve la identidad,
// o nil si no hay token o no valida. Nunca rechaza: es la entrada de los
// guards, que deciden ellos qué hacer con un anónimo.
func identityFromRequest(c *fiber.Ctx, jwtSecret string) *entity.Identity {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	uid, email, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}
	return &entity.Identity{UID: uid, Email: email}
}
