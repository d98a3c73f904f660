package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
)

// DashboardHandler maneja las peticiones HTTP del dashboard company-wide y del
// registro de subidas.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler inyectando el caso de uso.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// CompanyWideFilter godoc
// @Summary      Reporte company-wide filtrado (las siete tablas más los ejes)
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompanyWideFilterRequest  true  "Filtros"
// @Success      200   {object}  analytics.Report
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companywide/filter [post]
func (h *DashboardHandler) CompanyWideFilter(c *fiber.Ctx) error {
	var in dto.CompanyWideFilterRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.CompanyID <= 0 {
		return fail(c, fiber.StatusBadRequest, "company_id es requerido")
	}
	out, err := h.uc.CompanyWideFilter(c.Context(), CurrentUser(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar el reporte company-wide filtrado a PDF
// @Tags         dashboards
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.CompanyWideFilterRequest  true  "Filtros"
// @Success      200   {file}    file
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/companywide/export [post]
func (h *DashboardHandler) ExportPDF(c *fiber.Ctx) error {
	var in dto.CompanyWideFilterRequest
	if err := strictBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido: "+err.Error())
	}
	if in.CompanyID <= 0 {
		return fail(c, fiber.StatusBadRequest, "company_id es requerido")
	}
	pdfBytes, err := h.uc.ExportCompanyWidePDF(c.Context(), CurrentUser(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="companywide.pdf"`)
	return c.Send(pdfBytes)
}

// ListUploads godoc
// @Summary      Registro de subidas de spreadsheets
// @Tags         dashboards
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Param        skip   query  int  false  "Skip"    default(0)
// @Success      200    {object}  dto.UploadedFileListResponse
// @Router       /api/uploads [get]
func (h *DashboardHandler) ListUploads(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 100), Skip: c.QueryInt("skip", 0)}
	out, err := h.uc.ListUploads(CurrentUser(c), page)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
