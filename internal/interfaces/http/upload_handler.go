package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/ingest"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
	"github.com/tu-usuario/resto-dash/internal/domain/policy"
)

// UploadHandler maneja la subida de spreadsheets.
type UploadHandler struct {
	svc   *ingest.Service
	perms *usecase.PermissionUseCase
}

// NewUploadHandler construye el handler inyectando el pipeline de ingesta y el
// caso de uso de permisos (bit upload_excel).
func NewUploadHandler(svc *ingest.Service, perms *usecase.PermissionUseCase) *UploadHandler {
	return &UploadHandler{svc: svc, perms: perms}
}

// UploadExcel godoc
// @Summary      Subir un spreadsheet (base64) a un dashboard
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadExcelRequest  true  "Archivo y destino"
// @Success      201   {object}  dto.UploadExcelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/excel/upload [post]
func (h *UploadHandler) UploadExcel(c *fiber.Ctx) error {
	current := CurrentUser(c)
	allowed, err := h.perms.CanUploadExcel(current)
	if err != nil {
		return failDomain(c, err)
	}
	if !allowed {
		return fail(c, fiber.StatusForbidden, "sin permiso de subida de spreadsheets")
	}

	var in dto.UploadExcelRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.CompanyID <= 0 {
		return fail(c, fiber.StatusBadRequest, "company_id es requerido")
	}
	if !policy.CanAccessCompany(current, in.CompanyID) {
		return fail(c, fiber.StatusForbidden, "sin acceso a esa empresa")
	}

	out, err := h.svc.Upload(c.Context(), ingest.UploadInput{
		FileName:    in.FileName,
		FileContent: in.FileContent,
		Dashboard:   in.DashboardName,
		CompanyID:   in.CompanyID,
		LocationID:  in.LocationID,
		UploaderID:  current.ID,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadExcelResponse{SavedAs: out.SavedAs, Rows: out.Rows})
}
