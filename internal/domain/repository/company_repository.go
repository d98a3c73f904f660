package repository

import "github.com/tu-usuario/resto-dash/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	Update(company *entity.Company) error
	// Delete elimina la empresa; las cascadas del schema arrastran locations,
	// mails, usuarios con company_id y filas de dominio.
	Delete(id int64) error
}
