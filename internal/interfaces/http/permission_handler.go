package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
)

// PermissionHandler maneja las peticiones HTTP de los bits de capacidad.
type PermissionHandler struct {
	uc *usecase.PermissionUseCase
}

// NewPermissionHandler construye el handler inyectando el caso de uso.
func NewPermissionHandler(uc *usecase.PermissionUseCase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// GetByUser godoc
// @Summary      Permisos vigentes de un usuario
// @Tags         permissions
// @Produce      json
// @Param        user_id  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.PermissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permissions/{user_id} [get]
func (h *PermissionHandler) GetByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil || userID <= 0 {
		return fail(c, fiber.StatusBadRequest, "user_id inválido")
	}
	out, err := h.uc.GetByUser(CurrentUser(c), int64(userID))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Fijar permisos de un usuario
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PermissionRequest  true  "Bits de capacidad"
// @Success      200   {object}  dto.PermissionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/permissions [put]
func (h *PermissionHandler) Upsert(c *fiber.Ctx) error {
	var in dto.PermissionRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.UserID <= 0 || in.CompanyID <= 0 {
		return fail(c, fiber.StatusBadRequest, "user_id y company_id son requeridos")
	}
	out, err := h.uc.Upsert(CurrentUser(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
