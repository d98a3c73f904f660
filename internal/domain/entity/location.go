package entity

import "time"

// Location es un local/restaurante que pertenece a una Company.
type Location struct {
	ID        int64
	Name      string
	City      string
	State     string
	Postcode  string
	Address   string
	Phone     string
	Email     string
	CompanyID int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
