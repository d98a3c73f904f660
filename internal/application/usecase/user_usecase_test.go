package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/application/usecase"
	"github.com/tu-usuario/resto-dash/internal/domain"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
)

// fakeUserRepo repositorio en memoria con unicidad de email.
type fakeUserRepo struct {
	seq  int64
	byID map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, x := range r.byID {
		if x.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.seq++
	u.ID = r.seq
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}
func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}
func (r *fakeUserRepo) List(_, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeUserRepo) ListByCompany(companyID int64, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.byID, id)
	return nil
}

type fakeUserLocRepo struct {
	replaced map[int64][]int64
}

func (r *fakeUserLocRepo) Replace(userID, _ int64, locationIDs []int64) error {
	if r.replaced == nil {
		r.replaced = map[int64][]int64{}
	}
	r.replaced[userID] = locationIDs
	return nil
}
func (r *fakeUserLocRepo) ListByUser(int64) ([]*entity.UserLocation, error) { return nil, nil }

type fakePermRepo struct{ byUser map[int64]*entity.Permission }

func (r *fakePermRepo) GetByUser(userID int64) (*entity.Permission, error) {
	if r.byUser == nil {
		return nil, nil
	}
	return r.byUser[userID], nil
}
func (r *fakePermRepo) Upsert(p *entity.Permission) error {
	if r.byUser == nil {
		r.byUser = map[int64]*entity.Permission{}
	}
	r.byUser[p.UserID] = p
	return nil
}

func newUserUC() (*usecase.UserUseCase, *fakeUserRepo, *fakeUserLocRepo) {
	repo := newFakeUserRepo()
	locs := &fakeUserLocRepo{}
	return usecase.NewUserUseCase(repo, locs, &fakePermRepo{}), repo, locs
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, role string, companyID *int64) *entity.User {
	t.Helper()
	u := &entity.User{
		FirstName: "Seed", LastName: "User", Email: email,
		PasswordHash: "x", Role: role, IsActive: true, CompanyID: companyID,
	}
	require.NoError(t, repo.Create(u))
	return u
}

func company(id int64) *int64 { return &id }

func TestUserCreate_AdminCreaManagerConLocales(t *testing.T) {
	uc, repo, locs := newUserUC()
	admin := seedUser(t, repo, "admin@resto.com", entity.RoleAdmin, nil)

	out, err := uc.Create(admin, dto.CreateUserRequest{
		FirstName:   "Luis",
		LastName:    "Pérez",
		Email:       "luis@resto.com",
		Password:    "secreta-larga",
		Role:        entity.RoleManager,
		CompanyID:   company(7),
		LocationIDs: []int64{3, 4},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role)
	assert.True(t, out.IsActive)
	assert.Equal(t, []int64{3, 4}, locs.replaced[out.ID])

	// la contraseña quedó hasheada, nunca en claro
	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta-larga")))
}

func TestUserCreate_RolDesconocidoRechazado(t *testing.T) {
	uc, repo, _ := newUserUC()
	admin := seedUser(t, repo, "admin@resto.com", entity.RoleAdmin, nil)

	_, err := uc.Create(admin, dto.CreateUserRequest{
		FirstName: "X", LastName: "Y", Email: "x@resto.com",
		Password: "secreta-larga", Role: "root", CompanyID: company(7),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_ManagerNoCreaAdmin(t *testing.T) {
	uc, repo, _ := newUserUC()
	manager := seedUser(t, repo, "manager@resto.com", entity.RoleManager, company(7))

	_, err := uc.Create(manager, dto.CreateUserRequest{
		FirstName: "X", LastName: "Y", Email: "x@resto.com",
		Password: "secreta-larga", Role: entity.RoleAdmin, CompanyID: company(7),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserCreate_FueraDelTenantRechazado(t *testing.T) {
	uc, repo, _ := newUserUC()
	manager := seedUser(t, repo, "manager@resto.com", entity.RoleManager, company(7))

	_, err := uc.Create(manager, dto.CreateUserRequest{
		FirstName: "X", LastName: "Y", Email: "x@resto.com",
		Password: "secreta-larga", Role: entity.RoleUser, CompanyID: company(9),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un manager de la empresa 7 no crea usuarios en la 9")
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, repo, _ := newUserUC()
	admin := seedUser(t, repo, "admin@resto.com", entity.RoleAdmin, nil)
	seedUser(t, repo, "luis@resto.com", entity.RoleUser, company(7))

	_, err := uc.Create(admin, dto.CreateUserRequest{
		FirstName: "Luis", LastName: "Pérez", Email: "luis@resto.com",
		Password: "secreta-larga", Role: entity.RoleUser, CompanyID: company(7),
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_ManagerNoModificaAdmin(t *testing.T) {
	uc, repo, _ := newUserUC()
	manager := seedUser(t, repo, "manager@resto.com", entity.RoleManager, company(7))
	admin := seedUser(t, repo, "admin@resto.com", entity.RoleAdmin, company(7))

	nuevo := "Nombre"
	_, err := uc.Update(manager, admin.ID, dto.UpdateUserRequest{FirstName: &nuevo})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"manager no puede modificar a un admin")
}

func TestUserDeactivate_BajaLogica(t *testing.T) {
	uc, repo, _ := newUserUC()
	admin := seedUser(t, repo, "admin@resto.com", entity.RoleAdmin, nil)
	target := seedUser(t, repo, "luis@resto.com", entity.RoleUser, company(7))

	require.NoError(t, uc.Deactivate(admin, target.ID))

	stored, err := repo.GetByID(target.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive, "la fila sigue existiendo pero inactiva")
}

func TestUserDeactivate_Inexistente(t *testing.T) {
	uc, repo, _ := newUserUC()
	admin := seedUser(t, repo, "admin@resto.com", entity.RoleAdmin, nil)

	err := uc.Deactivate(admin, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
