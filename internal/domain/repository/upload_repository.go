package repository

import (
	"context"

	"github.com/tu-usuario/resto-dash/internal/domain/entity"
)

// UploadedFileRepository auditoría de subidas.
type UploadedFileRepository interface {
	Create(f *entity.UploadedFile) error
	List(limit, offset int) ([]*entity.UploadedFile, error)
}

// MasterFileRepository forma canónica de cada subida, clave
// (company, location, filename); Upsert reemplaza el payload completo.
type MasterFileRepository interface {
	Upsert(ctx context.Context, mf *entity.MasterFile) error
	GetByKey(ctx context.Context, companyID, locationID int64, filename string) (*entity.MasterFile, error)
}

// LogRepository resumen por ingesta, misma clave que MasterFile.
type LogRepository interface {
	Upsert(ctx context.Context, l *entity.Log) error
	GetByKey(ctx context.Context, companyID, locationID int64, filename string) (*entity.Log, error)
}
