package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
)

// LocationHandler maneja las peticiones HTTP para el recurso Location.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler inyectando el caso de uso.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear local
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "Datos del local"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.Name == "" || in.CompanyID <= 0 {
		return fail(c, fiber.StatusBadRequest, "name y company_id son requeridos")
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener local por ID
// @Tags         locations
// @Produce      json
// @Param        id   path  int  true  "ID del local"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(CurrentUser(c), int64(id))
	if err != nil {
		return failDomain(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "local no encontrado")
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Listar locales de una empresa
// @Tags         locations
// @Produce      json
// @Param        company_id  query  int  true   "ID de la empresa"
// @Param        limit       query  int  false  "Límite"  default(100)
// @Param        skip        query  int  false  "Skip"    default(0)
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/locations [get]
func (h *LocationHandler) ListByCompany(c *fiber.Ctx) error {
	companyID := c.QueryInt("company_id", 0)
	if companyID <= 0 {
		return fail(c, fiber.StatusBadRequest, "company_id es requerido")
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 100), Skip: c.QueryInt("skip", 0)}
	out, err := h.uc.ListByCompany(CurrentUser(c), int64(companyID), page)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar local
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID del local"
// @Param        body  body  dto.UpdateLocationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.UpdateLocationRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	out, err := h.uc.Update(CurrentUser(c), int64(id), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar local
// @Tags         locations
// @Produce      json
// @Param        id   path  int  true  "ID del local"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.uc.Delete(CurrentUser(c), int64(id)); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "local eliminado"})
}
