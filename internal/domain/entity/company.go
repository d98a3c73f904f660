package entity

import "time"

// Company representa un tenant del sistema: un grupo de restaurantes.
// Todo acceso a datos se limita por el id de la Company.
type Company struct {
	ID        int64
	Name      string
	Address   string
	State     string
	Postcode  string
	Phone     string
	Email     string
	Website   *string // opcional
	CreatedAt time.Time
}

// CompanyLocation relación company↔location. Hoy es redundante con
// Location.CompanyID; se mantiene como costura para un futuro many-to-many
// (una Location compartida por varias Companies). Las lecturas resuelven
// siempre por Location.CompanyID.
type CompanyLocation struct {
	ID         int64
	CompanyID  int64
	LocationID int64
}
