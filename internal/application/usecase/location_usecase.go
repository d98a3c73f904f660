package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/policy"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

// TenantTxRunner transacción para el alta de local: fila en locations más su
// relación en company_locations en un solo commit.
type TenantTxRunner interface {
	RunTenant(ctx context.Context, fn func(
		locationRepo repository.LocationRepository,
		clRepo repository.CompanyLocationRepository,
	) error) error
}

// LocationUseCase casos de uso de locales, siempre dentro del tenant del
// solicitante.
type LocationUseCase struct {
	repo        repository.LocationRepository
	companyRepo repository.CompanyRepository
	tx          TenantTxRunner
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, companyRepo repository.CompanyRepository, tx TenantTxRunner) *LocationUseCase {
	return &LocationUseCase{repo: repo, companyRepo: companyRepo, tx: tx}
}

// Create da de alta un local y su relación company_locations en una sola
// transacción. Devuelve ErrNotFound si la empresa no existe.
func (uc *LocationUseCase) Create(ctx context.Context, current *entity.User, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if !policy.CanAccessCompany(current, in.CompanyID) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	location := &entity.Location{
		Name:      in.Name,
		City:      in.City,
		State:     in.State,
		Postcode:  in.Postcode,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CompanyID: in.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.tx.RunTenant(ctx, func(locationRepo repository.LocationRepository, clRepo repository.CompanyLocationRepository) error {
		if err := locationRepo.Create(location); err != nil {
			return err
		}
		return clRepo.Create(&entity.CompanyLocation{
			CompanyID:  in.CompanyID,
			LocationID: location.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return entityToLocationResponse(location), nil
}

// GetByID obtiene un local; el acceso se valida contra su empresa.
func (uc *LocationUseCase) GetByID(current *entity.User, id int64) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if !policy.CanAccessCompany(current, location.CompanyID) {
		return nil, domain.ErrForbidden
	}
	return entityToLocationResponse(location), nil
}

// ListByCompany lista los locales de una empresa con paginación.
func (uc *LocationUseCase) ListByCompany(current *entity.User, companyID int64, page dto.PageRequest) (*dto.LocationListResponse, error) {
	if !policy.CanAccessCompany(current, companyID) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *entityToLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items, Limit: page.Limit, Skip: page.Skip}, nil
}

// Update actualización parcial de un local.
func (uc *LocationUseCase) Update(current *entity.User, id int64, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanAccessCompany(current, location.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.City != nil {
		location.City = *in.City
	}
	if in.State != nil {
		location.State = *in.State
	}
	if in.Postcode != nil {
		location.Postcode = *in.Postcode
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	if in.Phone != nil {
		location.Phone = *in.Phone
	}
	if in.Email != nil {
		location.Email = *in.Email
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return entityToLocationResponse(location), nil
}

// Delete elimina un local; la relación company_locations cae por cascada.
func (uc *LocationUseCase) Delete(current *entity.User, id int64) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	if !policy.CanAccessCompany(current, location.CompanyID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func entityToLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		City:      l.City,
		State:     l.State,
		Postcode:  l.Postcode,
		Address:   l.Address,
		Phone:     l.Phone,
		Email:     l.Email,
		CompanyID: l.CompanyID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
