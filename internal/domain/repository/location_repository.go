package repository

import "github.com/tu-usuario/resto-dash/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	// Create persiste el local y asigna su ID.
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id int64) error
}

// CompanyLocationRepository mantiene la relación company↔location.
// Redundante hoy con Location.CompanyID; ver nota en entity.CompanyLocation.
type CompanyLocationRepository interface {
	Create(cl *entity.CompanyLocation) error
	DeleteByLocation(locationID int64) error
}
