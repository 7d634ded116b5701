package repository

import (
	"time"

	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
)

// MovementWithProduct fila de movimiento enriquecida con datos del producto,
// para el listado global.
type MovementWithProduct struct {
	Movement    entity.StockMovement
	ProductSKU  string
	ProductName string
}

// StockMovementRepository define el puerto de persistencia del ledger de stock.
// El ledger es append-only: no existen Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListByProduct lista los movimientos de un producto, más recientes primero.
	ListByProduct(productID string, limit int) ([]*entity.StockMovement, error)
	// List lista movimientos globales en un rango de fechas cerrado (paginado),
	// más recientes primero. Devuelve también el total para la paginación.
	List(from, to *time.Time, limit, offset int) ([]MovementWithProduct, int, error)
	// SumByProduct suma las cantidades firmadas del ledger de un producto (auditoría).
	SumByProduct(productID string) (int64, error)
}
