package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

// reorderNote nota fija de los movimientos generados por la reposición masiva.
const reorderNote = "Reposición automática por stock bajo"

// ReorderAllLowStock repone todos los productos bajo su umbral: por cada uno
// genera una entrada (IN) del tamaño exacto del déficit, dejando el saldo en el
// umbral. Todo el lote corre en una sola transacción: o se repone todo o nada.
//
// Las filas se bloquean ORDER BY id FOR UPDATE, de modo que cualquier movimiento
// concurrente sobre un producto del lote espera a que el lote confirme (o
// viceversa) y ningún saldo se decide sobre una lectura obsoleta.
func (uc *StockUseCase) ReorderAllLowStock(ctx context.Context, createdBy string) (*dto.ReorderResult, error) {
	result := &dto.ReorderResult{}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		products, err := productRepo.ListBelowReorderForUpdate()
		if err != nil {
			return err
		}
		now := time.Now()
		for _, p := range products {
			deficit := p.Deficit()
			// Guarda ante carreras: el predicado ya filtró, pero la fila pudo
			// cambiar entre el plan y el bloqueo.
			if deficit <= 0 {
				continue
			}
			next := p.CurrentStock + deficit
			if err := productRepo.UpdateStockChecked(p.ID, p.CurrentStock, next); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: p.ID,
				Type:      entity.MovementTypeIN,
				Quantity:  deficit,
				Notes:     reorderNote,
				CreatedBy: createdBy,
				CreatedAt: now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
			result.ReorderedCount++
			result.TotalQuantity += deficit
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.ReorderedCount > 0 {
		if err := uc.notifier.NotifyReorderApplied(ctx, result.ReorderedCount, result.TotalQuantity); err != nil {
			log.Warn().Err(err).Msg("resumen de reposición no enviado")
		}
	}

	return result, nil
}
