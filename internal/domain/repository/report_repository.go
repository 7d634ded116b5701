package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockSummaryResult agregados del inventario para el resumen del dashboard.
type StockSummaryResult struct {
	TotalProducts   int64
	LowStockCount   int64 // current_stock < reorder_level
	OutOfStockCount int64 // current_stock = 0
	TotalValue      decimal.Decimal
	RecentMovements int64 // movimientos de los últimos 7 días
}

// LowStockResult un producto bajo su umbral, con el déficit calculado.
type LowStockResult struct {
	ProductID    string
	SKU          string
	Name         string
	CategoryName string
	SupplierName string
	CurrentStock int64
	ReorderLevel int64
	Deficit      int64
}

// InventoryRowResult fila del reporte de valorización de inventario.
type InventoryRowResult struct {
	SKU          string
	Name         string
	CategoryName string
	UnitMeasure  string
	CurrentStock int64
	UnitPrice    decimal.Decimal
	TotalValue   decimal.Decimal
}

// BalanceDriftResult producto cuyo saldo denormalizado no coincide con la suma
// del ledger. Resultado de la rutina de auditoría; en operación normal la lista
// es vacía.
type BalanceDriftResult struct {
	ProductID    string
	SKU          string
	CurrentStock int64
	LedgerSum    int64
}

// ReportRepository consultas de solo lectura para reportes y auditoría.
type ReportRepository interface {
	GetStockSummary(ctx context.Context) (*StockSummaryResult, error)
	ListLowStock(ctx context.Context) ([]LowStockResult, error)
	ListInventory(ctx context.Context) ([]InventoryRowResult, error)
	ListBalanceDrift(ctx context.Context) ([]BalanceDriftResult, error)
}
