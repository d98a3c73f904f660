package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/resto-dash/internal/application/auth"
	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/policy"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

// UserUseCase casos de uso de usuarios: alta, edición y baja lógica, siempre
// bajo las reglas de la jerarquía de roles.
type UserUseCase struct {
	repo      repository.UserRepository
	userLocs  repository.UserLocationRepository
	permsRepo repository.PermissionRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, userLocs repository.UserLocationRepository, permsRepo repository.PermissionRepository) *UserUseCase {
	return &UserUseCase{repo: repo, userLocs: userLocs, permsRepo: permsRepo}
}

// Create crea un usuario. El rol debe existir y estar dentro de lo que el
// solicitante puede crear; un usuario no global solo crea dentro de su empresa.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(current *entity.User, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if current == nil || !policy.CanCreateRole(current.Role, in.Role) {
		return nil, domain.ErrForbidden
	}
	if in.CompanyID != nil && !policy.CanAccessCompany(current, *in.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if in.CompanyID == nil && !policy.IsGlobalAdmin(current) {
		// solo los roles globales crean usuarios sin empresa
		return nil, domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Role:         in.Role,
		IsActive:     true,
		CompanyID:    in.CompanyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	if len(in.LocationIDs) > 0 && in.CompanyID != nil {
		if err := uc.userLocs.Replace(user.ID, *in.CompanyID, in.LocationIDs); err != nil {
			return nil, err
		}
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene un usuario; el acceso se valida contra su empresa.
func (uc *UserUseCase) GetByID(current *entity.User, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if user.CompanyID != nil && !policy.CanAccessCompany(current, *user.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if user.CompanyID == nil && !policy.IsGlobalAdmin(current) {
		return nil, domain.ErrForbidden
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios. Los roles globales ven todo; el resto solo su empresa.
func (uc *UserUseCase) List(current *entity.User, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.User
		err  error
	)
	if policy.IsGlobalAdmin(current) {
		list, err = uc.repo.List(page.Limit, page.Skip)
	} else {
		if current == nil || current.CompanyID == nil {
			return &dto.UserListResponse{Items: []dto.UserResponse{}, Limit: page.Limit, Skip: page.Skip}, nil
		}
		list, err = uc.repo.ListByCompany(*current.CompanyID, page.Limit, page.Skip)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Limit: page.Limit, Skip: page.Skip}, nil
}

// Update actualización parcial. El solicitante debe poder modificar tanto el
// rol actual del objetivo como el rol nuevo si cambia.
func (uc *UserUseCase) Update(current *entity.User, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if current == nil || !policy.CanUpdate(current.Role, user.Role) {
		return nil, domain.ErrForbidden
	}
	if user.CompanyID != nil && !policy.CanAccessCompany(current, *user.CompanyID) {
		return nil, domain.ErrForbidden
	}

	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		if !policy.CanCreateRole(current.Role, *in.Role) {
			return nil, domain.ErrForbidden
		}
		user.Role = *in.Role
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = in.Phone
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	if in.LocationIDs != nil && user.CompanyID != nil {
		if err := uc.userLocs.Replace(user.ID, *user.CompanyID, in.LocationIDs); err != nil {
			return nil, err
		}
	}
	return auth.ToUserResponse(user), nil
}

// Deactivate baja lógica: el usuario queda inactivo y auth rechaza sus tokens
// en la siguiente petición. La fila no se borra.
func (uc *UserUseCase) Deactivate(current *entity.User, id int64) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if current == nil || !policy.CanUpdate(current.Role, user.Role) {
		return domain.ErrForbidden
	}
	if user.CompanyID != nil && !policy.CanAccessCompany(current, *user.CompanyID) {
		return domain.ErrForbidden
	}
	user.IsActive = false
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// Delete borrado físico de la fila. Reservado al superuser; la vía normal
// es Deactivate.
func (uc *UserUseCase) Delete(current *entity.User, id int64) error {
	if current == nil || current.Role != entity.RoleSuperuser {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}
