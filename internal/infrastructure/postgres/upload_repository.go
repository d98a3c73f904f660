package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

var _ repository.UploadedFileRepository = (*UploadedFileRepo)(nil)
var _ repository.MasterFileRepository = (*MasterFileRepo)(nil)
var _ repository.LogRepository = (*LogRepo)(nil)

// UploadedFileRepo auditoría de subidas sobre PostgreSQL.
type UploadedFileRepo struct {
	q Querier
}

// NewUploadedFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUploadedFileRepository(q Querier) *UploadedFileRepo {
	return &UploadedFileRepo{q: q}
}

// Create persiste la fila de auditoría y asigna su ID.
func (r *UploadedFileRepo) Create(f *entity.UploadedFile) error {
	query := `
		INSERT INTO uploaded_files (file_name, dashboard_name, uploader_id, uploaded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		f.FileName, f.DashboardName, f.UploaderID, f.UploadedAt,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert uploaded_file: %w", err)
	}
	return nil
}

// List lista las subidas, más recientes primero.
func (r *UploadedFileRepo) List(limit, offset int) ([]*entity.UploadedFile, error) {
	query := `
		SELECT id, file_name, dashboard_name, uploader_id, uploaded_at
		FROM uploaded_files ORDER BY uploaded_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list uploaded_files: %w", err)
	}
	defer rows.Close()
	var list []*entity.UploadedFile
	for rows.Next() {
		var f entity.UploadedFile
		if err := rows.Scan(&f.ID, &f.FileName, &f.DashboardName, &f.UploaderID, &f.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan uploaded_file: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// MasterFileRepo forma canónica de las subidas sobre PostgreSQL.
type MasterFileRepo struct {
	q Querier
}

// NewMasterFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMasterFileRepository(q Querier) *MasterFileRepo {
	return &MasterFileRepo{q: q}
}

// Upsert crea o reemplaza el master file de (company, location, filename).
func (r *MasterFileRepo) Upsert(ctx context.Context, mf *entity.MasterFile) error {
	query := `
		INSERT INTO master_files (company_id, location_id, filename, file_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, location_id, filename) DO UPDATE SET file_data = EXCLUDED.file_data
		RETURNING id`
	err := r.q.QueryRow(ctx, query, mf.CompanyID, mf.LocationID, mf.Filename, mf.FileData).Scan(&mf.ID)
	if err != nil {
		return fmt.Errorf("upsert master_file: %w", err)
	}
	return nil
}

// GetByKey obtiene el master file por su clave natural. (nil, nil) si no existe.
func (r *MasterFileRepo) GetByKey(ctx context.Context, companyID, locationID int64, filename string) (*entity.MasterFile, error) {
	query := `
		SELECT id, company_id, location_id, filename, file_data
		FROM master_files WHERE company_id = $1 AND location_id = $2 AND filename = $3`
	var mf entity.MasterFile
	err := r.q.QueryRow(ctx, query, companyID, locationID, filename).Scan(
		&mf.ID, &mf.CompanyID, &mf.LocationID, &mf.Filename, &mf.FileData,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get master_file: %w", err)
	}
	return &mf, nil
}

// LogRepo resumen por ingesta sobre PostgreSQL.
type LogRepo struct {
	q Querier
}

// NewLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Upsert crea o reemplaza el log de (company, location, filename).
func (r *LogRepo) Upsert(ctx context.Context, l *entity.Log) error {
	query := `
		INSERT INTO logs (company_id, location_id, filename, created_at, file_data)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, location_id, filename) DO UPDATE SET
			created_at = EXCLUDED.created_at,
			file_data  = EXCLUDED.file_data
		RETURNING id`
	err := r.q.QueryRow(ctx, query, l.CompanyID, l.LocationID, l.Filename, l.CreatedAt, l.FileData).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("upsert log: %w", err)
	}
	return nil
}

// GetByKey obtiene el log por su clave natural. (nil, nil) si no existe.
func (r *LogRepo) GetByKey(ctx context.Context, companyID, locationID int64, filename string) (*entity.Log, error) {
	query := `
		SELECT id, company_id, location_id, filename, created_at, file_data
		FROM logs WHERE company_id = $1 AND location_id = $2 AND filename = $3`
	var l entity.Log
	err := r.q.QueryRow(ctx, query, companyID, locationID, filename).Scan(
		&l.ID, &l.CompanyID, &l.LocationID, &l.Filename, &l.CreatedAt, &l.FileData,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get log: %w", err)
	}
	return &l, nil
}
