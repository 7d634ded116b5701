package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOperationRequest body para POST /api/stock/add, /remove y /adjust.
// En add/remove Quantity es la magnitud (> 0); en adjust es el delta firmado.
type StockOperationRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// CategoryRef referencia denormalizada a la categoría del producto.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SupplierRef referencia denormalizada al proveedor del producto.
type SupplierRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductRef datos del producto anidados en la respuesta de un movimiento.
type ProductRef struct {
	ID           string       `json:"id"`
	SKU          string       `json:"sku"`
	Name         string       `json:"name"`
	UnitMeasure  string       `json:"unitMeasure"`
	CurrentStock int64        `json:"currentStock"`
	ReorderLevel int64        `json:"reorderLevel"`
	Category     *CategoryRef `json:"category,omitempty"`
	Supplier     *SupplierRef `json:"supplier,omitempty"`
}

// MovementResponse movimiento creado o listado, con el producto denormalizado.
// Quantity lleva el signo con el que quedó en el ledger.
type MovementResponse struct {
	ID        string      `json:"id"`
	ProductID string      `json:"productId"`
	Type      string      `json:"type"`
	Quantity  int64       `json:"quantity"`
	Notes     string      `json:"notes,omitempty"`
	CreatedBy string      `json:"createdBy"`
	CreatedAt time.Time   `json:"createdAt"`
	Product   *ProductRef `json:"product,omitempty"`
}

// MovementListItem fila del listado global de movimientos.
type MovementListItem struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductSKU  string    `json:"productSku"`
	ProductName string    `json:"productName"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MovementListResponse listado global paginado.
type MovementListResponse struct {
	Movements  []MovementListItem `json:"movements"`
	Pagination Pagination         `json:"pagination"`
}

// ReorderResult resultado de la reposición masiva de stock bajo.
type ReorderResult struct {
	ReorderedCount int   `json:"reorderedCount"`
	TotalQuantity  int64 `json:"totalQuantity"`
}

// StockSummaryResponse agregados del inventario.
type StockSummaryResponse struct {
	TotalProducts   int64           `json:"totalProducts"`
	LowStockCount   int64           `json:"lowStockCount"`
	OutOfStockCount int64           `json:"outOfStockCount"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	RecentMovements int64           `json:"recentMovements"`
}

// ProductAuditResponse auditoría del saldo de un solo producto contra su ledger.
type ProductAuditResponse struct {
	ProductID    string `json:"productId"`
	SKU          string `json:"sku"`
	CurrentStock int64  `json:"currentStock"`
	LedgerSum    int64  `json:"ledgerSum"`
	Consistent   bool   `json:"consistent"`
}

// BalanceDriftItem producto cuyo saldo no coincide con la suma del ledger.
type BalanceDriftItem struct {
	ProductID    string `json:"productId"`
	SKU          string `json:"sku"`
	CurrentStock int64  `json:"currentStock"`
	LedgerSum    int64  `json:"ledgerSum"`
}
