package notify

import (
	"context"

	"github.com/jhoicas/cafe-stock-api/internal/application/stock"
	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/pkg/logger"
)

var _ stock.Notifier = (*LogNotifier)(nil)

// LogNotifier registra las alertas en el log estructurado. Se usa cuando no
// hay SMTP configurado (desarrollo y tests).
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador de log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// NotifyLowStock registra la alerta de producto bajo umbral.
func (n *LogNotifier) NotifyLowStock(_ context.Context, product *entity.Product) error {
	n.log.Warn().
		Str("product_id", product.ID).
		Str("sku", product.SKU).
		Int64("current_stock", product.CurrentStock).
		Int64("reorder_level", product.ReorderLevel).
		Msg("producto bajo umbral de reposición")
	return nil
}

// NotifyReorderApplied registra el resumen de una reposición masiva.
func (n *LogNotifier) NotifyReorderApplied(_ context.Context, reorderedCount int, totalQuantity int64) error {
	n.log.Info().
		Int("reordered_count", reorderedCount).
		Int64("total_quantity", totalQuantity).
		Msg("reposición automática aplicada")
	return nil
}
