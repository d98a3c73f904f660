package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit int `query:"limit" validate:"min=1,max=1000"`
	Skip  int `query:"skip" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Skip son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Limit > 1000 {
		p.Limit = 1000
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// ErrorResponse cuerpo de error HTTP: código de estado repetido en el body y
// detalle legible.
type ErrorResponse struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
