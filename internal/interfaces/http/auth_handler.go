package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/auth"
	"github.com/tu-usuario/resto-dash/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de autenticación.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler inyectando el caso de uso.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signin godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SigninRequest  true  "Credenciales"
// @Success      200   {object}  dto.SigninResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var in dto.SigninRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.Email == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "email y password son requeridos")
	}
	out, err := h.uc.Signin(in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario autenticado actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return fail(c, fiber.StatusUnauthorized, "no autenticado")
	}
	return c.JSON(auth.ToUserResponse(user))
}
