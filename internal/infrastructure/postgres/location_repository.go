package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)
var _ repository.CompanyLocationRepository = (*CompanyLocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste el local y asigna su ID.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (name, city, state, postcode, address, phone, email, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		location.Name, location.City, location.State, location.Postcode, location.Address,
		location.Phone, location.Email, location.CompanyID, location.CreatedAt, location.UpdatedAt,
	).Scan(&location.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // la company no existe
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene un local por ID. Devuelve (nil, nil) si no existe.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	query := `
		SELECT id, name, city, state, postcode, address, phone, email, company_id, created_at, updated_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.City, &l.State, &l.Postcode, &l.Address, &l.Phone, &l.Email,
		&l.CompanyID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by id: %w", err)
	}
	return &l, nil
}

// ListByCompany lista los locales de una empresa con paginación.
func (r *LocationRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, name, city, state, postcode, address, phone, email, company_id, created_at, updated_at
		FROM locations WHERE company_id = $1 ORDER BY name ASC, id ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.City, &l.State, &l.Postcode, &l.Address, &l.Phone, &l.Email, &l.CompanyID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza los datos del local.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, city = $3, state = $4, postcode = $5, address = $6, phone = $7, email = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.City, location.State, location.Postcode,
		location.Address, location.Phone, location.Email, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el local por ID.
func (r *LocationRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CompanyLocationRepo implementación del puerto CompanyLocationRepository.
type CompanyLocationRepo struct {
	q Querier
}

// NewCompanyLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyLocationRepository(q Querier) *CompanyLocationRepo {
	return &CompanyLocationRepo{q: q}
}

// Create persiste la relación company↔location.
func (r *CompanyLocationRepo) Create(cl *entity.CompanyLocation) error {
	query := `
		INSERT INTO company_locations (company_id, location_id)
		VALUES ($1, $2)
		ON CONFLICT (company_id, location_id) DO NOTHING
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, cl.CompanyID, cl.LocationID).Scan(&cl.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil // ya existía
		}
		return fmt.Errorf("insert company_location: %w", err)
	}
	return nil
}

// DeleteByLocation elimina las relaciones de un local.
func (r *CompanyLocationRepo) DeleteByLocation(locationID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM company_locations WHERE location_id = $1`, locationID)
	if err != nil {
		return fmt.Errorf("delete company_locations: %w", err)
	}
	return nil
}
