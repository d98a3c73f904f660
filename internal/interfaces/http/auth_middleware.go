package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/auth"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/pkg/jwt"
)

// LocalCurrentUser key de c.Locals con el usuario resuelto por el middleware.
const LocalCurrentUser = "current_user"

// AuthMiddleware valida el Bearer Token y resuelve el usuario contra la base
// en cada petición: un usuario dado de baja o con rol cambiado lo nota en la
// siguiente llamada aunque su token siga vigente.
func AuthMiddleware(jwtSecret string, authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "token vacío")
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		user, err := authUC.CurrentUser(email)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "token no reconocido o usuario dado de baja")
		}
		c.Locals(LocalCurrentUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario del contexto (después del middleware de auth).
// Nil en rutas públicas.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalCurrentUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
