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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una empresa nueva y asigna su ID.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (name, address, state, postcode, phone, email, website, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		company.Name, company.Address, company.State, company.Postcode,
		company.Phone, company.Email, company.Website, company.CreatedAt,
	).Scan(&company.ID)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	query := `
		SELECT id, name, address, state, postcode, phone, email, website, created_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.State, &c.Postcode, &c.Phone, &c.Email, &c.Website, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return &c, nil
}

// List lista empresas con paginación, más recientes primero.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, address, state, postcode, phone, email, website, created_at
		FROM companies ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.State, &c.Postcode, &c.Phone, &c.Email, &c.Website, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de la empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, state = $4, postcode = $5, phone = $6, email = $7, website = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.State, company.Postcode,
		company.Phone, company.Email, company.Website,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la empresa; el schema arrastra en cascada sus hijos.
func (r *CompanyRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
