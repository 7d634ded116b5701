package stock

import (
	"context"

	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del par
// movimiento-del-ledger + actualización-de-saldo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// Notifier puerto de notificaciones de stock. Las llamadas son best-effort:
// un fallo se registra en el log y nunca afecta la operación de stock que lo originó.
type Notifier interface {
	NotifyLowStock(ctx context.Context, product *entity.Product) error
	NotifyReorderApplied(ctx context.Context, reorderedCount int, totalQuantity int64) error
}
