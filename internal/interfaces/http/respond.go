package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/domain"
)

// Helpers del sobre uniforme {success, message, data?}.

func respondOK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(dto.Envelope{Success: true, Message: message, Data: data})
}

func respondCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Message: message, Data: data})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Envelope{Success: false, Message: message})
}

// respondDomainError mapea errores de dominio a códigos HTTP para las rutas CRUD.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return respondError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return respondError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return respondError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, err.Error())
	default:
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// respondStockError mapea errores de las operaciones de stock. Por convención
// del API, producto inexistente y stock insuficiente se reportan como 400 con
// el mensaje de dominio; el conflicto transitorio como 409 (reintentable).
func respondStockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return respondError(c, fiber.StatusBadRequest, "producto no encontrado")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInsufficientStock):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return respondError(c, fiber.StatusConflict, err.Error())
	default:
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
}
