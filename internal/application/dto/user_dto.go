package dto

import "time"

// CreateUserRequest alta de usuario. La contraseña llega en claro y se hashea
// en el caso de uso; nunca se persiste ni se devuelve.
type CreateUserRequest struct {
	FirstName   string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string  `json:"last_name" validate:"required,min=1,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Phone       *string `json:"phone"`
	Role        string  `json:"role" validate:"required"`
	CompanyID   *int64  `json:"company_id"`
	LocationIDs []int64 `json:"location_ids"`
}

// UpdateUserRequest actualización parcial de usuario.
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	Phone       *string `json:"phone"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
	LocationIDs []int64 `json:"location_ids"`
}

// UserResponse salida de un usuario, nunca incluye el hash de contraseña.
type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CompanyID *int64    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Limit int            `json:"limit"`
	Skip  int            `json:"skip"`
}
