package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
)

// fakeMailRepo repositorio en memoria con IDs secuenciales.
type fakeMailRepo struct {
	seq  int64
	byID map[int64]*entity.Mail
}

func newFakeMailRepo() *fakeMailRepo {
	return &fakeMailRepo{byID: map[int64]*entity.Mail{}}
}

func (r *fakeMailRepo) Create(m *entity.Mail) error {
	r.seq++
	m.ID = r.seq
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}
func (r *fakeMailRepo) GetByID(id int64) (*entity.Mail, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}
func (r *fakeMailRepo) ListByCompany(companyID int64, _, _ int) ([]*entity.Mail, error) {
	var out []*entity.Mail
	for _, m := range r.byID {
		if m.CompanyID == companyID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeMailRepo) Update(m *entity.Mail) error {
	if _, ok := r.byID[m.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}
func (r *fakeMailRepo) Delete(id int64) error {
	delete(r.byID, id)
	return nil
}
func (r *fakeMailRepo) FindByReceivingTime(_ context.Context, hhmmss string) ([]*entity.Mail, error) {
	var out []*entity.Mail
	for _, m := range r.byID {
		if m.ReceivingTime == hhmmss {
			out = append(out, m)
		}
	}
	return out, nil
}

func adminUser() *entity.User {
	return &entity.User{ID: 1, Role: entity.RoleAdmin, IsActive: true}
}

func managerUser(companyID int64) *entity.User {
	return &entity.User{ID: 2, Role: entity.RoleManager, IsActive: true, CompanyID: &companyID}
}

func TestMailCreate_AdminConHoraValida(t *testing.T) {
	uc := usecase.NewMailUseCase(newFakeMailRepo())

	out, err := uc.Create(adminUser(), dto.CreateMailRequest{
		ReceiverName:  "Ana",
		ReceiverEmail: "ana@resto.com",
		ReceivingTime: "14:30:00",
		CompanyID:     7,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "14:30:00", out.ReceivingTime)
}

func TestMailCreate_HoraInvalidaRetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewMailUseCase(newFakeMailRepo())

	for _, bad := range []string{"25:00:00", "14:30", "14:61:00", "2:30:00 PM", ""} {
		_, err := uc.Create(adminUser(), dto.CreateMailRequest{
			ReceiverName:  "Ana",
			ReceiverEmail: "ana@resto.com",
			ReceivingTime: bad,
			CompanyID:     7,
		})
		require.Error(t, err, "hora %q debe rechazarse", bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestMailCreate_ManagerNoPuedeProgramar(t *testing.T) {
	uc := usecase.NewMailUseCase(newFakeMailRepo())

	_, err := uc.Create(managerUser(7), dto.CreateMailRequest{
		ReceiverName:  "Ana",
		ReceiverEmail: "ana@resto.com",
		ReceivingTime: "14:30:00",
		CompanyID:     7,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"programar correos es privilegio de superuser/admin")
}

func TestMailUpdate_ValidaLaHoraNueva(t *testing.T) {
	repo := newFakeMailRepo()
	uc := usecase.NewMailUseCase(repo)

	created, err := uc.Create(adminUser(), dto.CreateMailRequest{
		ReceiverName:  "Ana",
		ReceiverEmail: "ana@resto.com",
		ReceivingTime: "14:30:00",
		CompanyID:     7,
	})
	require.NoError(t, err)

	bad := "99:99:99"
	_, err = uc.Update(adminUser(), created.ID, dto.UpdateMailRequest{ReceivingTime: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	good := "09:15:00"
	out, err := uc.Update(adminUser(), created.ID, dto.UpdateMailRequest{ReceivingTime: &good})
	require.NoError(t, err)
	assert.Equal(t, "09:15:00", out.ReceivingTime)
}

func TestMailListByCompany_ManagerSoloSuEmpresa(t *testing.T) {
	repo := newFakeMailRepo()
	uc := usecase.NewMailUseCase(repo)

	_, err := uc.Create(adminUser(), dto.CreateMailRequest{
		ReceiverName: "Ana", ReceiverEmail: "ana@resto.com", ReceivingTime: "14:30:00", CompanyID: 7,
	})
	require.NoError(t, err)

	_, err = uc.ListByCompany(managerUser(9), 7, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden, "manager de la empresa 9 no lista la 7")

	out, err := uc.ListByCompany(managerUser(7), 7, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}
