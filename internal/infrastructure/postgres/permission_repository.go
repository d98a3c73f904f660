package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)
var _ repository.UserLocationRepository = (*UserLocationRepo)(nil)

// PermissionRepo implementación del puerto PermissionRepository.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// GetByUser obtiene los bits de un usuario. (nil, nil) si no tiene fila.
func (r *PermissionRepo) GetByUser(userID int64) (*entity.Permission, error) {
	query := `
		SELECT id, user_id, company_id, upload_excel, d1, d2, d3, d4, d5, d6, d7
		FROM permissions WHERE user_id = $1`
	var p entity.Permission
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyID, &p.UploadExcel,
		&p.D1, &p.D2, &p.D3, &p.D4, &p.D5, &p.D6, &p.D7,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return &p, nil
}

// Upsert crea o reemplaza los bits del usuario (una fila por usuario).
func (r *PermissionRepo) Upsert(p *entity.Permission) error {
	query := `
		INSERT INTO permissions (user_id, company_id, upload_excel, d1, d2, d3, d4, d5, d6, d7)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			company_id = EXCLUDED.company_id,
			upload_excel = EXCLUDED.upload_excel,
			d1 = EXCLUDED.d1, d2 = EXCLUDED.d2, d3 = EXCLUDED.d3, d4 = EXCLUDED.d4,
			d5 = EXCLUDED.d5, d6 = EXCLUDED.d6, d7 = EXCLUDED.d7
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.UserID, p.CompanyID, p.UploadExcel,
		p.D1, p.D2, p.D3, p.D4, p.D5, p.D6, p.D7,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("upsert permission: %w", err)
	}
	return nil
}

// UserLocationRepo implementación del puerto UserLocationRepository.
type UserLocationRepo struct {
	q Querier
}

// NewUserLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserLocationRepository(q Querier) *UserLocationRepo {
	return &UserLocationRepo{q: q}
}

// Replace reemplaza la asignación de locales de un usuario.
func (r *UserLocationRepo) Replace(userID, companyID int64, locationIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM user_locations WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user_locations: %w", err)
	}
	for _, locID := range locationIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO user_locations (user_id, company_id, location_id) VALUES ($1, $2, $3)
			 ON CONFLICT DO NOTHING`,
			userID, companyID, locID,
		)
		if err != nil {
			return fmt.Errorf("insert user_location: %w", err)
		}
	}
	return nil
}

// ListByUser devuelve los locales asignados a un usuario.
func (r *UserLocationRepo) ListByUser(userID int64) ([]*entity.UserLocation, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT user_id, company_id, location_id FROM user_locations WHERE user_id = $1 ORDER BY location_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user_locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserLocation
	for rows.Next() {
		var ul entity.UserLocation
		if err := rows.Scan(&ul.UserID, &ul.CompanyID, &ul.LocationID); err != nil {
			return nil, fmt.Errorf("scan user_location: %w", err)
		}
		list = append(list, &ul)
	}
	return list, rows.Err()
}
