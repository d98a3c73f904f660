package dto

// SigninRequest credenciales de acceso.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SigninResponse token emitido más el perfil del usuario autenticado.
type SigninResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
