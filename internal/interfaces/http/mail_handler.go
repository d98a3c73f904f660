package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
)

// MailHandler maneja las peticiones HTTP para las notificaciones programadas.
type MailHandler struct {
	uc *usecase.MailUseCase
}

// NewMailHandler construye el handler inyectando el caso de uso.
func NewMailHandler(uc *usecase.MailUseCase) *MailHandler {
	return &MailHandler{uc: uc}
}

// Create godoc
// @Summary      Programar una notificación por correo
// @Tags         mails
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMailRequest  true  "Datos de la notificación"
// @Success      201   {object}  dto.MailResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/mails [post]
func (h *MailHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMailRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.ReceiverEmail == "" || in.ReceivingTime == "" || in.CompanyID <= 0 {
		return fail(c, fiber.StatusBadRequest, "receiver_email, receiving_time y company_id son requeridos")
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener notificación por ID
// @Tags         mails
// @Produce      json
// @Param        id   path  int  true  "ID de la notificación"
// @Success      200  {object}  dto.MailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mails/{id} [get]
func (h *MailHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(CurrentUser(c), int64(id))
	if err != nil {
		return failDomain(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "notificación no encontrada")
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Listar notificaciones de una empresa
// @Tags         mails
// @Produce      json
// @Param        company_id  query  int  true   "ID de la empresa"
// @Param        limit       query  int  false  "Límite"  default(100)
// @Param        skip        query  int  false  "Skip"    default(0)
// @Success      200  {object}  dto.MailListResponse
// @Router       /api/mails [get]
func (h *MailHandler) ListByCompany(c *fiber.Ctx) error {
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
// @Summary      Actualizar notificación
// @Tags         mails
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la notificación"
// @Param        body  body  dto.UpdateMailRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MailResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/mails/{id} [put]
func (h *MailHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.UpdateMailRequest
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
// @Summary      Eliminar notificación
// @Tags         mails
// @Produce      json
// @Param        id   path  int  true  "ID de la notificación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/mails/{id} [delete]
func (h *MailHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.uc.Delete(CurrentUser(c), int64(id)); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "notificación eliminada"})
}
