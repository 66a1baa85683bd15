package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/jwt"
)

// LocalStoreID key del StoreID en c.Locals (inyectado por el middleware).
const LocalStoreID = "store_id"

// AuthMiddleware valida el Bearer Token JWT emitido en la instalación y deja
// el StoreID de la tienda en c.Locals. Es el atributo de llamador que usan los
// handlers cuando la petición no trae store_id explícito.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token vacío"))
		}
		storeID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido o expirado"))
		}
		c.Locals(LocalStoreID, storeID)
		return c.Next()
	}
}

// GetStoreID devuelve el StoreID del contexto (después del middleware de auth).
func GetStoreID(c *fiber.Ctx) string {
	v := c.Locals(LocalStoreID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// resolveStoreParam orden de resolución de tienda para los handlers:
// parámetro explícito (path/query) → atributo del llamador autenticado.
// El fallback a "primera tienda" queda en la capa de aplicación.
func resolveStoreParam(c *fiber.Ctx) string {
	if storeID := c.Query("store_id"); storeID != "" {
		return storeID
	}
	return GetStoreID(c)
}
