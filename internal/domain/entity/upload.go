package entity

import "time"

// UploadedFile auditoría de cada subida: nombre físico ya prefijado con
// timestamp, dashboard destino y quién subió.
type UploadedFile struct {
	ID            int64
	FileName      string
	DashboardName string
	UploaderID    int64
	UploadedAt    time.Time
}

// MasterFile es la forma canónica limpia de una subida, clave
// (company, location, filename). FileData es el payload JSON con las filas
// normalizadas; se reemplaza completo al resubir el mismo filename.
//
// Claves de primer nivel esperadas en FileData: "columns", "rows".
type MasterFile struct {
	ID         int64
	CompanyID  int64
	LocationID int64
	Filename   string
	FileData   []byte // JSONB
}

// Log resumen compacto de una ingesta, misma clave que MasterFile.
//
// Claves de primer nivel esperadas en FileData: "rows", "stores", "years",
// "columns".
type Log struct {
	ID         int64
	CompanyID  int64
	LocationID int64
	Filename   string
	CreatedAt  time.Time
	FileData   []byte // JSONB
}
