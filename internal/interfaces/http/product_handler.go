package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/application/usecase"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "producto creado", out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "producto", out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Param        lowStock    query  bool    false  "Solo productos bajo umbral"
// @Param        search      query  string  false  "Buscar por nombre o SKU"
// @Param        page        query  int     false  "Página (default 1)"
// @Param        limit       query  int     false  "Filas por página (default 20)"
// @Success      200  {object}  dto.Envelope
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page <= 0 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	filter := repository.ProductFilter{
		CategoryID: c.Query("categoryId"),
		LowStock:   c.QueryBool("lowStock", false),
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "productos", out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos editables"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "producto actualizado", out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "producto eliminado", nil)
}
