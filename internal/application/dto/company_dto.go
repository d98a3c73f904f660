package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Address  string  `json:"address"`
	State    string  `json:"state"`
	Postcode string  `json:"postcode"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Website  *string `json:"website"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *string `json:"address"`
	State    *string `json:"state"`
	Postcode *string `json:"postcode"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Website  *string `json:"website"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	State     string    `json:"state"`
	Postcode  string    `json:"postcode"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Website   *string   `json:"website"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyWithLocationsResponse empresa con sus locales embebidos.
type CompanyWithLocationsResponse struct {
	CompanyResponse
	Locations []LocationResponse `json:"locations"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Limit int               `json:"limit"`
	Skip  int               `json:"skip"`
}
