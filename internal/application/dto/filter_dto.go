package dto

import (
	"fmt"
	"time"

	"github.com/tu-usuario/resto-dash/internal/application/analytics"
)

// CompanyWideFilterRequest filtros del dashboard company-wide. Las fechas van
// en formato YYYY-MM-DD; start_date y end_date se aplican juntas o ninguna.
// FileName acota la agregación a una subida concreta (el nombre lógico con el
// que se guardó el master file); vacío agrega sobre todas las subidas.
type CompanyWideFilterRequest struct {
	CompanyID int64  `json:"company_id" validate:"required"`
	FileName  string `json:"file_name"`
	Store     string `json:"store"`
	Year      int    `json:"year"`
	Quarter   int    `json:"quarter" validate:"omitempty,min=1,max=4"`
	Helper4   string `json:"helper_4"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ToParams valida y convierte los filtros a parámetros del motor.
func (r *CompanyWideFilterRequest) ToParams() (analytics.Params, error) {
	p := analytics.Params{
		Store:   r.Store,
		Year:    r.Year,
		Quarter: r.Quarter,
		Helper4: r.Helper4,
	}
	if r.Quarter < 0 || r.Quarter > 4 {
		return p, fmt.Errorf("quarter debe estar entre 1 y 4, llegó %d", r.Quarter)
	}
	if (r.StartDate == "") != (r.EndDate == "") {
		return p, fmt.Errorf("start_date y end_date van juntas o ninguna")
	}
	if r.StartDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return p, fmt.Errorf("start_date inválida '%s' (formato YYYY-MM-DD)", r.StartDate)
		}
		end, err := time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return p, fmt.Errorf("end_date inválida '%s' (formato YYYY-MM-DD)", r.EndDate)
		}
		if end.Before(start) {
			return p, fmt.Errorf("end_date no puede ser anterior a start_date")
		}
		p.StartDate = &start
		p.EndDate = &end
	}
	return p, nil
}
