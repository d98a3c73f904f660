package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los traducen
// a códigos 400/401/403/404/409/502/500 en la frontera; el resto del código solo
// los propaga o los envuelve con contexto.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUpstream           = errors.New("fallo en servicio externo")
)
