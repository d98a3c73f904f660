package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL vida útil por defecto de un token: 7 días.
const DefaultTTL = 7 * 24 * time.Hour

// Claims son los claims estándar JWT; el sujeto (sub) es el email del usuario.
// No se incluye el rol: el middleware resuelve el usuario completo contra la DB
// en cada request, así un usuario desactivado queda fuera aunque su token siga vigente.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate genera un token HS256 firmado con sub=email y exp=now+ttl.
// Si ttl <= 0 se usa DefaultTTL (7 días).
func Generate(secret, email, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if email == "" {
		return "", fmt.Errorf("jwt: subject vacío")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el email (sub).
// Retorna error si el token es inválido, expirado, con firma incorrecta o sin sub.
func Parse(secret, tokenString string) (email string, err error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token sin subject")
	}
	return claims.Subject, nil
}
