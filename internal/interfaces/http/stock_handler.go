package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP del motor de stock (protegido).
type StockHandler struct {
	uc      *stock.StockUseCase
	auditor *stock.BalanceAuditor
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase, auditor *stock.BalanceAuditor) *StockHandler {
	return &StockHandler{uc: uc, auditor: auditor}
}

// movementInput arma el MovementInput con la identidad del usuario autenticado.
func movementInput(c *fiber.Ctx, in dto.StockOperationRequest) stock.MovementInput {
	createdBy := GetUserName(c)
	if createdBy == "" {
		createdBy = GetUserID(c)
	}
	return stock.MovementInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		CreatedBy: createdBy,
	}
}

// AddStock godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "productId, quantity (> 0), notes opcional"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/stock/add [post]
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	movement, err := h.uc.AddStock(c.Context(), movementInput(c, in))
	if err != nil {
		return respondStockError(c, err)
	}
	return respondCreated(c, "entrada registrada", movement)
}

// RemoveStock godoc
// @Summary      Registrar salida de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "productId, quantity (> 0), notes opcional"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/stock/remove [post]
func (h *StockHandler) RemoveStock(c *fiber.Ctx) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	movement, err := h.uc.RemoveStock(c.Context(), movementInput(c, in))
	if err != nil {
		return respondStockError(c, err)
	}
	return respondCreated(c, "salida registrada", movement)
}

// AdjustStock godoc
// @Summary      Registrar ajuste manual de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "productId, quantity firmado (≠ 0), notes requerido"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/stock/adjust [post]
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	movement, err := h.uc.AdjustStock(c.Context(), movementInput(c, in))
	if err != nil {
		return respondStockError(c, err)
	}
	return respondCreated(c, "ajuste registrado", movement)
}

// History godoc
// @Summary      Historial de movimientos de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        limit      query  int     false  "Máximo de filas (default 50)"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/stock/history/{productId} [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	productID := c.Params("productId")
	limit := c.QueryInt("limit", 0)
	movements, err := h.uc.History(c.Context(), productID, limit)
	if err != nil {
		return respondStockError(c, err)
	}
	return respondOK(c, "historial del producto", movements)
}

// ListMovements godoc
// @Summary      Listado global de movimientos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página (default 1)"
// @Param        limit      query  int     false  "Filas por página (default 20)"
// @Param        startDate  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", 0)

	var from, to *time.Time
	if s := c.Query("startDate"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "startDate inválido, formato YYYY-MM-DD")
		}
		from = &t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "endDate inválido, formato YYYY-MM-DD")
		}
		// Rango cerrado: incluir el día completo
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	out, err := h.uc.ListMovements(c.Context(), page, limit, from, to)
	if err != nil {
		return respondStockError(c, err)
	}
	return respondOK(c, "movimientos", out)
}

// GetMovement godoc
// @Summary      Obtener un movimiento por ID
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/stock/movements/{id} [get]
func (h *StockHandler) GetMovement(c *fiber.Ctx) error {
	movement, err := h.uc.GetMovement(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "movimiento", movement)
}

// ReorderAll godoc
// @Summary      Reponer todos los productos con stock bajo
// @Description  Genera una entrada (IN) por cada producto bajo su umbral, del
//
//	tamaño exacto del déficit, en una sola transacción.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/stock/reorder-all [post]
func (h *StockHandler) ReorderAll(c *fiber.Ctx) error {
	createdBy := GetUserName(c)
	if createdBy == "" {
		createdBy = GetUserID(c)
	}
	result, err := h.uc.ReorderAllLowStock(c.Context(), createdBy)
	if err != nil {
		return respondStockError(c, err)
	}
	return respondOK(c, "reposición aplicada", result)
}

// AuditBalances godoc
// @Summary      Auditoría de saldos contra el ledger
// @Description  Recalcula cada saldo desde la suma del ledger y devuelve las
//
//	derivas encontradas. Herramienta de diagnóstico; lista vacía = consistente.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/stock/audit [get]
func (h *StockHandler) AuditBalances(c *fiber.Ctx) error {
	drift, err := h.auditor.AuditBalances(c.Context())
	if err != nil {
		return respondStockError(c, err)
	}
	msg := "saldos consistentes con el ledger"
	if len(drift) > 0 {
		msg = "derivas encontradas"
	}
	return respondOK(c, msg, drift)
}

// AuditProduct godoc
// @Summary      Auditoría del saldo de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/stock/audit/{productId} [get]
func (h *StockHandler) AuditProduct(c *fiber.Ctx) error {
	out, err := h.auditor.AuditProduct(c.Context(), c.Params("productId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "auditoría del producto", out)
}
