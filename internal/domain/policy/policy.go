// Package policy concentra los predicados de autorización por rol y tenant.
// Los handlers llaman a estas funciones; nunca reimplementan las reglas.
package policy

import (
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
)

// Niveles de privilegio: menor = más privilegio. user y trial comparten nivel.
// Un rol desconocido resuelve al nivel más débil (deniega en vez de fallar).
const weakestLevel = 5

var roleLevels = map[string]int{
	entity.RoleSuperuser: 1,
	entity.RoleAdmin:     2,
	entity.RoleManager:   3,
	entity.RoleUser:      4,
	entity.RoleTrial:     4,
}

// Level devuelve el nivel numérico del rol.
func Level(role string) int {
	if lvl, ok := roleLevels[role]; ok {
		return lvl
	}
	return weakestLevel
}

// CanUpdate indica si un usuario con rol current puede modificar a uno con rol target.
//   - superuser modifica a cualquiera
//   - admin modifica a manager y user
//   - manager modifica a user
func CanUpdate(current, target string) bool {
	switch current {
	case entity.RoleSuperuser:
		return true
	case entity.RoleAdmin:
		return target == entity.RoleManager || target == entity.RoleUser
	case entity.RoleManager:
		return target == entity.RoleUser
	}
	return false
}

// AllowedToCreate devuelve los roles que current puede crear. Vacío si ninguno.
func AllowedToCreate(current string) []string {
	switch current {
	case entity.RoleSuperuser:
		return []string{entity.RoleAdmin, entity.RoleManager, entity.RoleUser, entity.RoleTrial}
	case entity.RoleAdmin:
		return []string{entity.RoleManager, entity.RoleUser, entity.RoleTrial}
	case entity.RoleManager:
		return []string{entity.RoleUser, entity.RoleTrial}
	}
	return nil
}

// CanCreateRole indica si current puede crear un usuario con rol target.
func CanCreateRole(current, target string) bool {
	for _, r := range AllowedToCreate(current) {
		if r == target {
			return true
		}
	}
	return false
}

// CanAccessCompany indica si el usuario puede operar sobre datos de la empresa
// targetCompanyID. superuser y admin ven todas; el resto solo la propia.
// Un usuario no privilegiado sin empresa asignada deniega, no falla.
func CanAccessCompany(current *entity.User, targetCompanyID int64) bool {
	if current == nil {
		return false
	}
	if current.Role == entity.RoleSuperuser || current.Role == entity.RoleAdmin {
		return true
	}
	if current.CompanyID == nil {
		return false
	}
	return *current.CompanyID == targetCompanyID
}

// IsGlobalAdmin indica si el usuario administra recursos globales (empresas,
// altas cruzadas de tenant).
func IsGlobalAdmin(current *entity.User) bool {
	if current == nil {
		return false
	}
	return current.Role == entity.RoleSuperuser || current.Role == entity.RoleAdmin
}

// CanSetGlobalTime indica si el usuario puede administrar la programación global
// de correos (crear/actualizar Mail).
func CanSetGlobalTime(current *entity.User) bool {
	return IsGlobalAdmin(current)
}
