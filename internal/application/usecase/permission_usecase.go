package usecase

import (
	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/policy"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

// PermissionUseCase casos de uso de los bits de capacidad por usuario.
type PermissionUseCase struct {
	repo     repository.PermissionRepository
	userRepo repository.UserRepository
}

// NewPermissionUseCase construye el caso de uso.
func NewPermissionUseCase(repo repository.PermissionRepository, userRepo repository.UserRepository) *PermissionUseCase {
	return &PermissionUseCase{repo: repo, userRepo: userRepo}
}

// GetByUser devuelve los bits vigentes del usuario. Un usuario sin fila de
// permisos resuelve a todo denegado, no a error.
func (uc *PermissionUseCase) GetByUser(current *entity.User, userID int64) (*dto.PermissionResponse, error) {
	target, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if target.CompanyID != nil && !policy.CanAccessCompany(current, *target.CompanyID) {
		return nil, domain.ErrForbidden
	}
	p, err := uc.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &dto.PermissionResponse{UserID: userID}, nil
	}
	return entityToPermissionResponse(p), nil
}

// Upsert fija los bits de capacidad de un usuario. El solicitante debe poder
// modificar al usuario objetivo según la jerarquía de roles.
func (uc *PermissionUseCase) Upsert(current *entity.User, in dto.PermissionRequest) (*dto.PermissionResponse, error) {
	target, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if current == nil || !policy.CanUpdate(current.Role, target.Role) {
		return nil, domain.ErrForbidden
	}
	if !policy.CanAccessCompany(current, in.CompanyID) {
		return nil, domain.ErrForbidden
	}
	p := &entity.Permission{
		UserID:      in.UserID,
		CompanyID:   in.CompanyID,
		UploadExcel: in.UploadExcel,
		D1:          in.D1,
		D2:          in.D2,
		D3:          in.D3,
		D4:          in.D4,
		D5:          in.D5,
		D6:          in.D6,
		D7:          in.D7,
	}
	if err := uc.repo.Upsert(p); err != nil {
		return nil, err
	}
	return entityToPermissionResponse(p), nil
}

// CanUploadExcel indica si el usuario tiene el bit de subida de spreadsheets.
// Los roles globales suben siempre.
func (uc *PermissionUseCase) CanUploadExcel(current *entity.User) (bool, error) {
	if policy.IsGlobalAdmin(current) {
		return true, nil
	}
	if current == nil {
		return false, nil
	}
	p, err := uc.repo.GetByUser(current.ID)
	if err != nil {
		return false, err
	}
	return p != nil && p.UploadExcel, nil
}

func entityToPermissionResponse(p *entity.Permission) *dto.PermissionResponse {
	return &dto.PermissionResponse{
		UserID:      p.UserID,
		CompanyID:   p.CompanyID,
		UploadExcel: p.UploadExcel,
		D1:          p.D1,
		D2:          p.D2,
		D3:          p.D3,
		D4:          p.D4,
		D5:          p.D5,
		D6:          p.D6,
		D7:          p.D7,
	}
}
