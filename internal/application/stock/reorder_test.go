package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
)

func TestReorderAll_ReponeSoloLosBajoUmbral(t *testing.T) {
	env := newTestEnv()
	// A: 2/10 -> le faltan 8. B: 15/10 -> no se toca.
	env.seedProduct("A", 2, 10)
	env.seedProduct("B", 15, 10)

	result, err := env.uc.ReorderAllLowStock(context.Background(), "admin")
	require.NoError(t, err)

	assert.Equal(t, 1, result.ReorderedCount)
	assert.Equal(t, int64(8), result.TotalQuantity)
	assert.Equal(t, int64(10), env.store.balance("A"), "A queda exactamente en su umbral")
	assert.Equal(t, int64(15), env.store.balance("B"), "B no se modifica")

	require.Len(t, env.store.movements, 1)
	mov := env.store.movements[0]
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.Equal(t, int64(8), mov.Quantity)
	assert.Equal(t, "A", mov.ProductID)
	assert.Equal(t, "admin", mov.CreatedBy)
	assert.NotEmpty(t, mov.Notes, "la reposición deja nota explicativa")
}

func TestReorderAll_VariosProductos(t *testing.T) {
	env := newTestEnv()
	env.seedProduct("A", 0, 5)  // déficit 5
	env.seedProduct("B", 3, 10) // déficit 7
	env.seedProduct("C", 9, 9)  // en el umbral exacto: no está "bajo"

	result, err := env.uc.ReorderAllLowStock(context.Background(), "admin")
	require.NoError(t, err)

	assert.Equal(t, 2, result.ReorderedCount)
	assert.Equal(t, int64(12), result.TotalQuantity)
	assert.Equal(t, int64(5), env.store.balance("A"))
	assert.Equal(t, int64(10), env.store.balance("B"))
	assert.Equal(t, int64(9), env.store.balance("C"))

	// Invariante: cada saldo sigue igual a la suma de su ledger más el inicial.
	assert.Equal(t, int64(5), env.store.ledgerSum("A"))
	assert.Equal(t, int64(7), env.store.ledgerSum("B"))
	assert.Equal(t, int64(0), env.store.ledgerSum("C"))
}

func TestReorderAll_SinProductosBajoUmbral(t *testing.T) {
	env := newTestEnv()
	env.seedProduct("A", 20, 10)

	result, err := env.uc.ReorderAllLowStock(context.Background(), "admin")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ReorderedCount)
	assert.Equal(t, int64(0), result.TotalQuantity)
	assert.Empty(t, env.store.movements)
	assert.Equal(t, 0, env.notifier.reorderCalls, "sin reposiciones no hay notificación")
}

func TestReorderAll_NotificaResumen(t *testing.T) {
	env := newTestEnv()
	env.seedProduct("A", 2, 10)
	env.seedProduct("B", 1, 4)

	_, err := env.uc.ReorderAllLowStock(context.Background(), "admin")
	require.NoError(t, err)

	assert.Equal(t, 1, env.notifier.reorderCalls)
	assert.Equal(t, 2, env.notifier.reorderCount)
	assert.Equal(t, int64(11), env.notifier.reorderTotal)
}

func TestReorderAll_EsIdempotenteTrasReponer(t *testing.T) {
	env := newTestEnv()
	env.seedProduct("A", 2, 10)

	first, err := env.uc.ReorderAllLowStock(context.Background(), "admin")
	require.NoError(t, err)
	require.Equal(t, 1, first.ReorderedCount)

	// Segunda pasada inmediata: ya nadie está bajo umbral.
	second, err := env.uc.ReorderAllLowStock(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, 0, second.ReorderedCount)
	assert.Len(t, env.store.movements, 1)
}
