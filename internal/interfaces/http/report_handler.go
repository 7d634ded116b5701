package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-stock-api/internal/application/report"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido, solo lectura).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/stock/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetStockSummary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "resumen de stock", out)
}

// LowStock godoc
// @Summary      Reporte de productos bajo umbral
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStockReport(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "reporte de stock bajo", out)
}

// Inventory godoc
// @Summary      Reporte de valorización de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.GetInventoryReport(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "reporte de inventario", out)
}

// InventoryPDF godoc
// @Summary      Reporte de valorización en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GetInventoryPDF(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := fmt.Sprintf("inventario_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
