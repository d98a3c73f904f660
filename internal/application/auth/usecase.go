// Package auth casos de uso de autenticación: signin y resolución del usuario
// actual a partir del subject del token.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
	"github.com/tu-usuario/resto-dash/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Signin verifica email/password, genera JWT y retorna token + usuario.
// Credenciales malas y usuario inexistente responden igual (ErrUnauthorized)
// para no filtrar qué emails existen; un usuario dado de baja devuelve
// ErrForbidden.
func (uc *UseCase) Signin(in dto.SigninRequest) (*dto.SigninResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, uc.jwtCfg.Issuer, jwt.DefaultTTL)
	if err != nil {
		return nil, err
	}
	return &dto.SigninResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// CurrentUser resuelve el usuario del subject del token contra la base en cada
// petición: los cambios de rol y las bajas aplican de inmediato, sin esperar a
// que expire el token. Un usuario inexistente o dado de baja invalida el token
// por igual (ErrUnauthorized).
func (uc *UseCase) CurrentUser(email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// ToUserResponse proyección pública del usuario, sin hash de contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CompanyID: u.CompanyID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
