package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create crea una categoría.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "categoría creada", out)
}

// GetByID obtiene una categoría por ID.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "categoría", out)
}

// List lista todas las categorías.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "categorías", out)
}

// Update actualiza una categoría.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "categoría actualizada", out)
}

// Delete elimina una categoría sin productos asociados.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "categoría eliminada", nil)
}
