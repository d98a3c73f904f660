package usecase

import (
	"time"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/policy"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

// CompanyUseCase casos de uso de empresas. Las operaciones de escritura son
// solo para superuser/admin; las lecturas respetan el tenant del solicitante.
type CompanyUseCase struct {
	repo         repository.CompanyRepository
	locationRepo repository.LocationRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, locationRepo repository.LocationRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, locationRepo: locationRepo}
}

// Create crea una nueva empresa. Solo superuser y admin.
func (uc *CompanyUseCase) Create(current *entity.User, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !policy.IsGlobalAdmin(current) {
		return nil, domain.ErrForbidden
	}
	company := &entity.Company{
		Name:      in.Name,
		Address:   in.Address,
		State:     in.State,
		Postcode:  in.Postcode,
		Phone:     in.Phone,
		Email:     in.Email,
		Website:   in.Website,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa con sus locales embebidos.
func (uc *CompanyUseCase) GetByID(current *entity.User, id int64) (*dto.CompanyWithLocationsResponse, error) {
	if !policy.CanAccessCompany(current, id) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	locations, err := uc.locationRepo.ListByCompany(id, 1000, 0)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyWithLocationsResponse{
		CompanyResponse: *entityToCompanyResponse(company),
		Locations:       make([]dto.LocationResponse, 0, len(locations)),
	}
	for _, l := range locations {
		out.Locations = append(out.Locations, *entityToLocationResponse(l))
	}
	return out, nil
}

// List lista empresas con paginación. Solo superuser y admin ven el listado
// completo; el resto recibe únicamente la propia.
func (uc *CompanyUseCase) List(current *entity.User, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	if current != nil && current.Role != entity.RoleSuperuser && current.Role != entity.RoleAdmin {
		if current.CompanyID == nil {
			return &dto.CompanyListResponse{Items: []dto.CompanyResponse{}, Limit: page.Limit, Skip: page.Skip}, nil
		}
		own, err := uc.repo.GetByID(*current.CompanyID)
		if err != nil {
			return nil, err
		}
		items := []dto.CompanyResponse{}
		if own != nil {
			items = append(items, *entityToCompanyResponse(own))
		}
		return &dto.CompanyListResponse{Items: items, Limit: page.Limit, Skip: page.Skip}, nil
	}
	list, err := uc.repo.List(page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items, Limit: page.Limit, Skip: page.Skip}, nil
}

// ListWithLocations devuelve cada empresa visible con su lista completa de
// locales. Superuser y admin ven todas; el resto solo la propia.
func (uc *CompanyUseCase) ListWithLocations(current *entity.User) ([]dto.CompanyWithLocationsResponse, error) {
	var (
		companies []*entity.Company
		err       error
	)
	if policy.IsGlobalAdmin(current) {
		companies, err = uc.repo.List(1000, 0)
	} else {
		if current == nil || current.CompanyID == nil {
			return []dto.CompanyWithLocationsResponse{}, nil
		}
		var own *entity.Company
		own, err = uc.repo.GetByID(*current.CompanyID)
		if own != nil {
			companies = append(companies, own)
		}
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyWithLocationsResponse, 0, len(companies))
	for _, company := range companies {
		locations, err := uc.locationRepo.ListByCompany(company.ID, 1000, 0)
		if err != nil {
			return nil, err
		}
		item := dto.CompanyWithLocationsResponse{
			CompanyResponse: *entityToCompanyResponse(company),
			Locations:       make([]dto.LocationResponse, 0, len(locations)),
		}
		for _, l := range locations {
			item.Locations = append(item.Locations, *entityToLocationResponse(l))
		}
		out = append(out, item)
	}
	return out, nil
}

// Update actualización parcial. Solo superuser y admin.
func (uc *CompanyUseCase) Update(current *entity.User, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !policy.IsGlobalAdmin(current) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.State != nil {
		company.State = *in.State
	}
	if in.Postcode != nil {
		company.Postcode = *in.Postcode
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Website != nil {
		company.Website = in.Website
	}
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina la empresa; las cascadas del schema arrastran sus datos.
// Solo superuser y admin.
func (uc *CompanyUseCase) Delete(current *entity.User, id int64) error {
	if !policy.IsGlobalAdmin(current) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		State:     c.State,
		Postcode:  c.Postcode,
		Phone:     c.Phone,
		Email:     c.Email,
		Website:   c.Website,
		CreatedAt: c.CreatedAt,
	}
}
