package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de la cafetería.
// CurrentStock es la proyección denormalizada del ledger de movimientos:
// solo se muta dentro de la misma transacción que inserta el movimiento.
type Product struct {
	ID           string
	SKU          string // código único de negocio
	Name         string
	Description  string
	CategoryID   string
	SupplierID   string          // vacío si no tiene proveedor asociado
	UnitPrice    decimal.Decimal // precio unitario de venta
	UnitMeasure  string          // kg, lt, unidad, bolsa...
	ReorderLevel int64           // umbral de stock bajo (>= 0)
	CurrentStock int64           // saldo actual, nunca negativo tras una operación exitosa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está por debajo de su umbral de reposición.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock < p.ReorderLevel
}

// Deficit devuelve cuántas unidades faltan para llegar exactamente al umbral.
func (p *Product) Deficit() int64 {
	return p.ReorderLevel - p.CurrentStock
}
