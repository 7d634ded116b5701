package dto

import "github.com/shopspring/decimal"

// LowStockItem fila del reporte de stock bajo.
type LowStockItem struct {
	ProductID    string `json:"productId"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName,omitempty"`
	SupplierName string `json:"supplierName,omitempty"`
	CurrentStock int64  `json:"currentStock"`
	ReorderLevel int64  `json:"reorderLevel"`
	Deficit      int64  `json:"deficit"`
}

// LowStockReport reporte de productos bajo su umbral de reposición.
type LowStockReport struct {
	Items        []LowStockItem `json:"items"`
	TotalDeficit int64          `json:"totalDeficit"`
}

// InventoryReportItem fila del reporte de valorización.
type InventoryReportItem struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	CategoryName string          `json:"categoryName,omitempty"`
	UnitMeasure  string          `json:"unitMeasure"`
	CurrentStock int64           `json:"currentStock"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalValue   decimal.Decimal `json:"totalValue"`
}

// InventoryReport reporte de valorización del inventario completo.
type InventoryReport struct {
	Items      []InventoryReportItem `json:"items"`
	GrandTotal decimal.Decimal       `json:"grandTotal"`
}
