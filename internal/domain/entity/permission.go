package entity

// Permission bits de capacidad por usuario: subir excel y visibilidad de los
// siete dashboards (d1..d7).
type Permission struct {
	ID          int64
	UserID      int64
	CompanyID   int64
	UploadExcel bool
	D1          bool
	D2          bool
	D3          bool
	D4          bool
	D5          bool
	D6          bool
	D7          bool
}
