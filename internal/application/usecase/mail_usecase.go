package usecase

import (
	"fmt"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	"github.com/tu-usuario/resto-dash/internal/domain/policy"
	"github.com/tu-usuario/resto-dash/internal/domain/repository"
)

// MailUseCase casos de uso de notificaciones programadas. Crear y modificar la
// programación es privilegio de superuser/admin.
type MailUseCase struct {
	repo repository.MailRepository
}

// NewMailUseCase construye el caso de uso.
func NewMailUseCase(repo repository.MailRepository) *MailUseCase {
	return &MailUseCase{repo: repo}
}

// Create registra una notificación programada. Valida formato HH:MM:SS.
func (uc *MailUseCase) Create(current *entity.User, in dto.CreateMailRequest) (*dto.MailResponse, error) {
	if !policy.CanSetGlobalTime(current) {
		return nil, domain.ErrForbidden
	}
	if err := dto.ValidReceivingTime(in.ReceivingTime); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	mail := &entity.Mail{
		ReceiverName:  in.ReceiverName,
		ReceiverEmail: in.ReceiverEmail,
		ReceivingTime: in.ReceivingTime,
		CompanyID:     in.CompanyID,
	}
	if err := uc.repo.Create(mail); err != nil {
		return nil, err
	}
	return entityToMailResponse(mail), nil
}

// GetByID obtiene una notificación; la lectura respeta el tenant.
func (uc *MailUseCase) GetByID(current *entity.User, id int64) (*dto.MailResponse, error) {
	mail, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mail == nil {
		return nil, nil
	}
	if !policy.CanAccessCompany(current, mail.CompanyID) {
		return nil, domain.ErrForbidden
	}
	return entityToMailResponse(mail), nil
}

// ListByCompany lista las notificaciones de una empresa.
func (uc *MailUseCase) ListByCompany(current *entity.User, companyID int64, page dto.PageRequest) (*dto.MailListResponse, error) {
	if !policy.CanAccessCompany(current, companyID) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MailResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *entityToMailResponse(m))
	}
	return &dto.MailListResponse{Items: items, Limit: page.Limit, Skip: page.Skip}, nil
}

// Update actualización parcial de una notificación.
func (uc *MailUseCase) Update(current *entity.User, id int64, in dto.UpdateMailRequest) (*dto.MailResponse, error) {
	if !policy.CanSetGlobalTime(current) {
		return nil, domain.ErrForbidden
	}
	mail, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mail == nil {
		return nil, domain.ErrNotFound
	}
	if in.ReceiverName != nil {
		mail.ReceiverName = *in.ReceiverName
	}
	if in.ReceiverEmail != nil {
		mail.ReceiverEmail = *in.ReceiverEmail
	}
	if in.ReceivingTime != nil {
		if err := dto.ValidReceivingTime(*in.ReceivingTime); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		mail.ReceivingTime = *in.ReceivingTime
	}
	if err := uc.repo.Update(mail); err != nil {
		return nil, err
	}
	return entityToMailResponse(mail), nil
}

// Delete elimina una notificación programada.
func (uc *MailUseCase) Delete(current *entity.User, id int64) error {
	if !policy.CanSetGlobalTime(current) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func entityToMailResponse(m *entity.Mail) *dto.MailResponse {
	if m == nil {
		return nil
	}
	return &dto.MailResponse{
		ID:            m.ID,
		ReceiverName:  m.ReceiverName,
		ReceiverEmail: m.ReceiverEmail,
		ReceivingTime: m.ReceivingTime,
		CompanyID:     m.CompanyID,
	}
}
