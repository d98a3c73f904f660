package repository

import (
	"context"

	"github.com/tu-usuario/resto-dash/internal/domain/entity"
)

// MailRepository define el puerto de persistencia para Mail.
type MailRepository interface {
	Create(mail *entity.Mail) error
	GetByID(id int64) (*entity.Mail, error)
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Mail, error)
	Update(mail *entity.Mail) error
	Delete(id int64) error
	// FindByReceivingTime devuelve los correos cuya receiving_time es exactamente
	// hhmmss ("HH:MM:SS"). El dispatcher la llama con el minuto actual y :00.
	FindByReceivingTime(ctx context.Context, hhmmss string) ([]*entity.Mail, error)
}
