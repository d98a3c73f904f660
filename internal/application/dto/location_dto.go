package dto

import "time"

// CreateLocationRequest entrada para dar de alta un local.
type CreateLocationRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	CompanyID int64  `json:"company_id" validate:"required"`
}

// UpdateLocationRequest entrada para actualizar un local (campos opcionales).
type UpdateLocationRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Postcode *string `json:"postcode"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// LocationResponse salida de un local.
type LocationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Postcode  string    `json:"postcode"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CompanyID int64     `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse lista paginada de locales.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Limit int                `json:"limit"`
	Skip  int                `json:"skip"`
}
