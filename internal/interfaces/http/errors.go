package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-dash/internal/application/dto"
	"github.com/tu-usuario/resto-dash/internal/domain"
)

// fail responde un error con el cuerpo estándar {status, detail}.
func fail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Status: status, Detail: detail})
}

// failDomain traduce un error de dominio a su código HTTP.
func failDomain(c *fiber.Ctx, err error) error {
	return fail(c, statusFor(err), err.Error())
}

// statusFor mapea los errores categóricos del dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// strictBody decodifica el cuerpo JSON rechazando campos desconocidos: un
// campo mal tecleado falla con 400 en vez de ignorarse en silencio.
func strictBody(c *fiber.Ctx, out any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}
