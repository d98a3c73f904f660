package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/resto-dash/internal/application/auth"
	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain/entity"
	apphttp "github.com/tu-usuario/resto-dash/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/resto-dash/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "resto-dash-test"
	testPassword  = "super-secreta-123"
)

// fakeUserRepo repositorio en memoria indexado por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.byEmail[u.Email] = u; return nil }
func (r *fakeUserRepo) GetByID(int64) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.byEmail[u.Email] = u; return nil }
func (r *fakeUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) ListByCompany(int64, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Delete(int64) error { return nil }

// newTestAuth construye el caso de uso de auth con un usuario activo registrado.
func newTestAuth(t *testing.T, users ...*entity.User) *auth.UseCase {
	t.Helper()
	repo := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	for _, u := range users {
		u.PasswordHash = string(hash)
		repo.byEmail[u.Email] = u
	}
	return auth.NewUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer})
}

func activeUser(email, role string) *entity.User {
	companyID := int64(7)
	return &entity.User{
		ID: 1, FirstName: "Ana", LastName: "Gómez", Email: email,
		Role: role, IsActive: true, CompanyID: &companyID,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
}

// buildTestApp aplicación mínima con una ruta protegida que devuelve el email
// del usuario resuelto por el middleware.
func buildTestApp(authUC *auth.UseCase) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, authUC),
		func(c *fiber.Ctx) error {
			u := apphttp.CurrentUser(c)
			return c.JSON(fiber.Map{"email": u.Email, "role": u.Role})
		},
	)
	return app
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, testIssuer, pkgjwt.DefaultTTL)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoResuelveUsuario(t *testing.T) {
	authUC := newTestAuth(t, activeUser("ana@resto.com", entity.RoleManager))
	app := buildTestApp(authUC)

	resp := doRequest(t, app, tokenFor(t, "ana@resto.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ana@resto.com", body["email"])
	assert.Equal(t, entity.RoleManager, body["role"],
		"el rol sale de la base, no del token")
}

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	app := buildTestApp(newTestAuth(t, activeUser("ana@resto.com", entity.RoleUser)))
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":401`, "el cuerpo de error repite el código")
}

func TestAuthMiddleware_TokenMalformadoRetorna401(t *testing.T) {
	app := buildTestApp(newTestAuth(t, activeUser("ana@resto.com", entity.RoleUser)))
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioInexistenteRetorna401(t *testing.T) {
	// token firmado correctamente pero el email ya no existe en la base
	app := buildTestApp(newTestAuth(t, activeUser("ana@resto.com", entity.RoleUser)))
	resp := doRequest(t, app, tokenFor(t, "fantasma@resto.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioDadoDeBajaRetorna401(t *testing.T) {
	u := activeUser("baja@resto.com", entity.RoleUser)
	u.IsActive = false
	app := buildTestApp(newTestAuth(t, u))

	// el token sigue firmado y vigente; la baja lógica lo invalida
	resp := doRequest(t, app, tokenFor(t, "baja@resto.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"la baja lógica deja el token sin efecto: no autenticado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Signin end-to-end contra el handler
// ──────────────────────────────────────────────────────────────────────────────

func buildSigninApp(authUC *auth.UseCase) *fiber.App {
	app := fiber.New()
	h := apphttp.NewAuthHandler(authUC)
	app.Post("/api/auth/signin", h.Signin)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSignin_CredencialesValidasDevuelveToken(t *testing.T) {
	app := buildSigninApp(newTestAuth(t, activeUser("ana@resto.com", entity.RoleAdmin)))

	resp := postJSON(t, app, "/api/auth/signin", dto.SigninRequest{
		Email:    "ana@resto.com",
		Password: testPassword,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.SigninResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@resto.com", out.User.Email)

	// el token emitido debe pasar el parse
	email, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@resto.com", email)
}

func TestSignin_PasswordIncorrectaRetorna401(t *testing.T) {
	app := buildSigninApp(newTestAuth(t, activeUser("ana@resto.com", entity.RoleAdmin)))

	resp := postJSON(t, app, "/api/auth/signin", dto.SigninRequest{
		Email:    "ana@resto.com",
		Password: "equivocada",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignin_EmailInexistenteRespondeIgualQuePasswordMala(t *testing.T) {
	app := buildSigninApp(newTestAuth(t, activeUser("ana@resto.com", entity.RoleAdmin)))

	resp := postJSON(t, app, "/api/auth/signin", dto.SigninRequest{
		Email:    "nadie@resto.com",
		Password: testPassword,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"no se debe poder distinguir qué emails existen")
}

func TestSignin_CampoDesconocidoRetorna400(t *testing.T) {
	app := buildSigninApp(newTestAuth(t, activeUser("ana@resto.com", entity.RoleAdmin)))

	resp := postJSON(t, app, "/api/auth/signin", map[string]string{
		"email":    "ana@resto.com",
		"password": testPassword,
		"emial":    "typo", // campo desconocido: el decode estricto lo rechaza
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
