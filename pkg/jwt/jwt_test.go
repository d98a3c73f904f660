package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/resto-dash/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "resto-dash-test"
	testEmail  = "ana@resto.com"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}

func TestGenerate_TTLCeroUsaElDefault(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, 0)
	require.NoError(t, err)

	email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}

func TestGenerate_EntradasVacias(t *testing.T) {
	_, err := pkgjwt.Generate("", testEmail, testIssuer, time.Hour)
	assert.Error(t, err, "secret vacío debe fallar")

	_, err = pkgjwt.Generate(testSecret, "", testIssuer, time.Hour)
	assert.Error(t, err, "subject vacío debe fallar")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenExpirado(t *testing.T) {
	// se firma a mano porque Generate normaliza ttl <= 0 al default
	claims := gojwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testEmail,
		IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_TokenSinSubject(t *testing.T) {
	claims := gojwt.RegisteredClaims{
		Issuer:    testIssuer,
		IssuedAt:  gojwt.NewNumericDate(time.Now()),
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token sin sub no identifica a nadie")
}

func TestParse_RechazaAlgoritmoNoHMAC(t *testing.T) {
	// alg=none firmado con la clave especial de la librería
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{
		Subject:   testEmail,
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "solo se acepta HMAC")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "ni.siquiera.jwt")
	assert.Error(t, err)
}
