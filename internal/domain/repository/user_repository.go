package repository

import "github.com/tu-usuario/resto-dash/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListByCompany(companyID int64, limit, offset int) ([]*entity.User, error)
	// Delete elimina la fila (hard delete; la baja lógica es Update con IsActive=false).
	Delete(id int64) error
}

// UserLocationRepository asignación de locales a usuarios.
type UserLocationRepository interface {
	Replace(userID, companyID int64, locationIDs []int64) error
	ListByUser(userID int64) ([]*entity.UserLocation, error)
}

// PermissionRepository bits de capacidad por usuario.
type PermissionRepository interface {
	GetByUser(userID int64) (*entity.Permission, error)
	Upsert(p *entity.Permission) error
}
