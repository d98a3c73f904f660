package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/resto-dash/internal/application/analytics"
	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/policy"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

// ReportPDFGenerator puerto de exportación del reporte company-wide a PDF.
type ReportPDFGenerator interface {
	GenerateReport(ctx context.Context, company *entity.Company, report *analytics.Report, generatedAt time.Time) ([]byte, error)
}

// DashboardUseCase casos de uso del dashboard company-wide y del registro de
// subidas.
type DashboardUseCase struct {
	finRepo     repository.FinancialRepository
	companyRepo repository.CompanyRepository
	uploadsRepo repository.UploadedFileRepository
	pdf         ReportPDFGenerator
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(finRepo repository.FinancialRepository, companyRepo repository.CompanyRepository, uploadsRepo repository.UploadedFileRepository, pdf ReportPDFGenerator) *DashboardUseCase {
	return &DashboardUseCase{finRepo: finRepo, companyRepo: companyRepo, uploadsRepo: uploadsRepo, pdf: pdf}
}

// CompanyWideFilter ejecuta el motor de agregación con los filtros pedidos.
// La ruta es pública (el front la consulta antes de autenticar); cuando hay
// usuario autenticado se valida el tenant igualmente.
func (uc *DashboardUseCase) CompanyWideFilter(ctx context.Context, current *entity.User, in dto.CompanyWideFilterRequest) (*analytics.Report, error) {
	if current != nil && !policy.CanAccessCompany(current, in.CompanyID) {
		return nil, domain.ErrForbidden
	}
	params, err := in.ToParams()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	var rows []entity.FinancialRow
	if in.FileName != "" {
		rows, err = uc.finRepo.ListByFile(ctx, in.CompanyID, in.FileName)
	} else {
		rows, err = uc.finRepo.ListByCompany(ctx, in.CompanyID)
	}
	if err != nil {
		return nil, err
	}
	return analytics.BuildCompanyWide(rows, params), nil
}

// ExportCompanyWidePDF genera el reporte filtrado y lo exporta a PDF.
func (uc *DashboardUseCase) ExportCompanyWidePDF(ctx context.Context, current *entity.User, in dto.CompanyWideFilterRequest) ([]byte, error) {
	if !policy.CanAccessCompany(current, in.CompanyID) {
		return nil, domain.ErrForbidden
	}
	report, err := uc.CompanyWideFilter(ctx, current, in)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateReport(ctx, company, report, time.Now())
}

// ListUploads lista el registro de subidas (más reciente primero).
func (uc *DashboardUseCase) ListUploads(current *entity.User, page dto.PageRequest) (*dto.UploadedFileListResponse, error) {
	if current == nil {
		return nil, domain.ErrUnauthorized
	}
	page.DefaultPage()
	list, err := uc.uploadsRepo.List(page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UploadedFileResponse, 0, len(list))
	for _, f := range list {
		items = append(items, dto.UploadedFileResponse{
			ID:            f.ID,
			FileName:      f.FileName,
			DashboardName: f.DashboardName,
			UploaderID:    f.UploaderID,
			UploadedAt:    f.UploadedAt,
		})
	}
	return &dto.UploadedFileListResponse{Items: items, Limit: page.Limit, Skip: page.Skip}, nil
}
