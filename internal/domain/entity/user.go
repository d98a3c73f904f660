package entity

import "time"

// Roles válidos para User. Orden total por privilegio: superuser es el más
// privilegiado; user y trial comparten nivel.
const (
	RoleSuperuser = "superuser"
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleUser      = "user"
	RoleTrial     = "trial"
)

// ValidRole indica si el rol está dentro del conjunto enumerado.
// Roles desconocidos se rechazan en la frontera HTTP.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperuser, RoleAdmin, RoleManager, RoleUser, RoleTrial:
		return true
	}
	return false
}

// User representa un usuario del sistema. CompanyID es opcional: superusers y
// admins globales no pertenecen a ninguna empresa.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string // único global
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Phone        *string
	Role         string // superuser, admin, manager, user, trial
	IsActive     bool   // false = baja lógica; auth rechaza sus tokens
	CompanyID    *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserLocation relación many-to-many usuario↔local dentro de una empresa.
type UserLocation struct {
	UserID     int64
	CompanyID  int64
	LocationID int64
}
