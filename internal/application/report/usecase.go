// Package report contiene los casos de uso de reportes del inventario:
// resumen del dashboard, stock bajo y valorización (JSON y PDF).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

// InventoryPDFGenerator puerto de render del reporte de valorización en PDF.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report *dto.InventoryReport, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase consultas de solo lectura sobre productos y ledger.
// Nunca muta estado; delega todo en ReportRepository.
type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	pdfGenerator InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, pdfGenerator InventoryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdfGenerator: pdfGenerator}
}

// GetStockSummary devuelve los agregados del inventario: total de productos,
// bajo umbral, en cero, valor total (saldo × precio) y movimientos de los
// últimos 7 días.
func (uc *ReportUseCase) GetStockSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	s, err := uc.reportRepo.GetStockSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen de stock: %w", err)
	}
	return &dto.StockSummaryResponse{
		TotalProducts:   s.TotalProducts,
		LowStockCount:   s.LowStockCount,
		OutOfStockCount: s.OutOfStockCount,
		TotalValue:      s.TotalValue.Round(2),
		RecentMovements: s.RecentMovements,
	}, nil
}

// GetLowStockReport lista los productos bajo su umbral con el déficit de cada uno.
func (uc *ReportUseCase) GetLowStockReport(ctx context.Context) (*dto.LowStockReport, error) {
	rows, err := uc.reportRepo.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de stock bajo: %w", err)
	}
	out := &dto.LowStockReport{Items: make([]dto.LowStockItem, 0, len(rows))}
	for _, r := range rows {
		out.Items = append(out.Items, dto.LowStockItem{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			Name:         r.Name,
			CategoryName: r.CategoryName,
			SupplierName: r.SupplierName,
			CurrentStock: r.CurrentStock,
			ReorderLevel: r.ReorderLevel,
			Deficit:      r.Deficit,
		})
		out.TotalDeficit += r.Deficit
	}
	return out, nil
}

// GetInventoryReport devuelve la valorización del inventario completo.
func (uc *ReportUseCase) GetInventoryReport(ctx context.Context) (*dto.InventoryReport, error) {
	rows, err := uc.reportRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: %w", err)
	}
	out := &dto.InventoryReport{
		Items:      make([]dto.InventoryReportItem, 0, len(rows)),
		GrandTotal: decimal.Zero,
	}
	for _, r := range rows {
		out.Items = append(out.Items, dto.InventoryReportItem{
			SKU:          r.SKU,
			Name:         r.Name,
			CategoryName: r.CategoryName,
			UnitMeasure:  r.UnitMeasure,
			CurrentStock: r.CurrentStock,
			UnitPrice:    r.UnitPrice,
			TotalValue:   r.TotalValue.Round(2),
		})
		out.GrandTotal = out.GrandTotal.Add(r.TotalValue)
	}
	out.GrandTotal = out.GrandTotal.Round(2)
	return out, nil
}

// GetInventoryPDF genera el reporte de valorización renderizado en PDF.
func (uc *ReportUseCase) GetInventoryPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.GetInventoryReport(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.pdfGenerator.GenerateInventoryPDF(ctx, report, time.Now())
	if err != nil {
		return nil, fmt.Errorf("generar PDF de inventario: %w", err)
	}
	return pdf, nil
}
