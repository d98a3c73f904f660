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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, first_name, last_name, email, password_hash, phone, role, is_active, company_id, created_at, updated_at`

// Create persiste un nuevo usuario y asigna su ID.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, phone, role, is_active, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Phone,
		user.Role, user.IsActive, user.CompanyID, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByEmail obtiene un usuario por email (único global). (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Phone,
		&u.Role, &u.IsActive, &u.CompanyID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update actualiza un usuario (incluida la baja lógica vía IsActive).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, email = $4, password_hash = $5,
			phone = $6, role = $7, is_active = $8, company_id = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Phone, user.Role, user.IsActive, user.CompanyID, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List lista todos los usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	return r.scanMany(context.Background(), query, limit, offset)
}

// ListByCompany lista usuarios de una empresa con paginación.
func (r *UserRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	return r.scanMany(context.Background(), query, companyID, limit, offset)
}

func (r *UserRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.IsActive, &u.CompanyID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID (hard delete).
func (r *UserRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
