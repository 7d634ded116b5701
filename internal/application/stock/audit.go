package stock

import (
	"context"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/domain"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

// BalanceAuditor recalcula los saldos desde el ledger y reporta las derivas.
// Es una herramienta de diagnóstico, no una ruta caliente: el saldo denormalizado
// es una vista materializada del ledger y solo se muta junto a él.
type BalanceAuditor struct {
	reportRepo   repository.ReportRepository
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewBalanceAuditor construye el auditor.
func NewBalanceAuditor(
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *BalanceAuditor {
	return &BalanceAuditor{
		reportRepo:   reportRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// AuditBalances compara current_stock contra SUM(quantity) del ledger por producto.
// Devuelve la lista de productos con deriva; vacía si todo es consistente.
func (a *BalanceAuditor) AuditBalances(ctx context.Context) ([]dto.BalanceDriftItem, error) {
	drift, err := a.reportRepo.ListBalanceDrift(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BalanceDriftItem, 0, len(drift))
	for _, d := range drift {
		out = append(out, dto.BalanceDriftItem{
			ProductID:    d.ProductID,
			SKU:          d.SKU,
			CurrentStock: d.CurrentStock,
			LedgerSum:    d.LedgerSum,
		})
	}
	return out, nil
}

// AuditProduct recalcula el saldo de un solo producto desde su ledger.
// Consistent indica si el saldo denormalizado coincide con la suma.
func (a *BalanceAuditor) AuditProduct(ctx context.Context, productID string) (*dto.ProductAuditResponse, error) {
	product, err := a.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	sum, err := a.movementRepo.SumByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductAuditResponse{
		ProductID:    product.ID,
		SKU:          product.SKU,
		CurrentStock: product.CurrentStock,
		LedgerSum:    sum,
		Consistent:   product.CurrentStock == sum,
	}, nil
}
