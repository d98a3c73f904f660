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

var _ repository.MailRepository = (*MailRepo)(nil)

// MailRepo implementación del puerto MailRepository sobre PostgreSQL.
// receiving_time es TIME en la DB; se lee y escribe como texto HH24:MI:SS
// para no arrastrar zonas horarias a una hora del día.
type MailRepo struct {
	q Querier
}

// NewMailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMailRepository(q Querier) *MailRepo {
	return &MailRepo{q: q}
}

// Create persiste un correo programado y asigna su ID.
func (r *MailRepo) Create(mail *entity.Mail) error {
	query := `
		INSERT INTO mails (receiver_name, receiver_email, receiving_time, company_id)
		VALUES ($1, $2, $3::time, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		mail.ReceiverName, mail.ReceiverEmail, mail.ReceivingTime, mail.CompanyID,
	).Scan(&mail.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // la company no existe
		}
		return fmt.Errorf("insert mail: %w", err)
	}
	return nil
}

// GetByID obtiene un correo por ID. (nil, nil) si no existe.
func (r *MailRepo) GetByID(id int64) (*entity.Mail, error) {
	query := `
		SELECT id, receiver_name, receiver_email, to_char(receiving_time, 'HH24:MI:SS'), company_id
		FROM mails WHERE id = $1`
	var m entity.Mail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ReceiverName, &m.ReceiverEmail, &m.ReceivingTime, &m.CompanyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mail by id: %w", err)
	}
	return &m, nil
}

// ListByCompany lista los correos programados de una empresa.
func (r *MailRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Mail, error) {
	query := `
		SELECT id, receiver_name, receiver_email, to_char(receiving_time, 'HH24:MI:SS'), company_id
		FROM mails WHERE company_id = $1 ORDER BY receiving_time ASC, id ASC LIMIT $2 OFFSET $3`
	return r.scanMany(context.Background(), query, companyID, limit, offset)
}

// FindByReceivingTime devuelve los correos con receiving_time exactamente igual
// a hhmmss. Igualdad estricta: una fila guardada con segundos != 00 nunca
// coincide con el minuto truncado del dispatcher (semántica heredada).
func (r *MailRepo) FindByReceivingTime(ctx context.Context, hhmmss string) ([]*entity.Mail, error) {
	query := `
		SELECT id, receiver_name, receiver_email, to_char(receiving_time, 'HH24:MI:SS'), company_id
		FROM mails WHERE receiving_time = $1::time ORDER BY id ASC`
	return r.scanMany(ctx, query, hhmmss)
}

func (r *MailRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Mail, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mails: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mail
	for rows.Next() {
		var m entity.Mail
		if err := rows.Scan(&m.ID, &m.ReceiverName, &m.ReceiverEmail, &m.ReceivingTime, &m.CompanyID); err != nil {
			return nil, fmt.Errorf("scan mail: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un correo programado.
func (r *MailRepo) Update(mail *entity.Mail) error {
	query := `
		UPDATE mails SET receiver_name = $2, receiver_email = $3, receiving_time = $4::time
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		mail.ID, mail.ReceiverName, mail.ReceiverEmail, mail.ReceivingTime,
	)
	if err != nil {
		return fmt.Errorf("update mail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un correo programado.
func (r *MailRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM mails WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
