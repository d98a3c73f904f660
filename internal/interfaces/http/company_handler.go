package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.Name == "" {
		return fail(c, fiber.StatusBadRequest, "name es requerido")
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID, con sus locales
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyWithLocationsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(CurrentUser(c), int64(id))
	if err != nil {
		return failDomain(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "empresa no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Param        skip   query  int  false  "Skip"    default(0)
// @Success      200    {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 100), Skip: c.QueryInt("skip", 0)}
	out, err := h.uc.List(CurrentUser(c), page)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// ListWithLocations godoc
// @Summary      Listar empresas con sus locales embebidos
// @Tags         companies
// @Produce      json
// @Success      200  {array}  dto.CompanyWithLocationsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/company-locations/all [get]
func (h *CompanyHandler) ListWithLocations(c *fiber.Ctx) error {
	out, err := h.uc.ListWithLocations(CurrentUser(c))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.UpdateCompanyRequest
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
// @Summary      Eliminar empresa
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.uc.Delete(CurrentUser(c), int64(id)); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empresa eliminada"})
}
