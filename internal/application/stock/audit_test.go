package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-stock-api/internal/application/stock"
	"github.com/jhoicas/cafe-stock-api/internal/domain"
)

func newAuditor(store *memStore) *stock.BalanceAuditor {
	return stock.NewBalanceAuditor(
		nil, // el reporte global no se usa en estos casos
		&fakeProductRepo{store: store, locking: true},
		&fakeMovementRepo{store: store, locking: true},
	)
}

func TestAuditProduct_SaldoConsistente(t *testing.T) {
	env := newTestEnv()
	env.seedProduct("p1", 0, 0)
	ctx := context.Background()

	_, err := env.uc.AddStock(ctx, stock.MovementInput{ProductID: "p1", Quantity: 9})
	require.NoError(t, err)
	_, err = env.uc.RemoveStock(ctx, stock.MovementInput{ProductID: "p1", Quantity: 4})
	require.NoError(t, err)

	out, err := newAuditor(env.store).AuditProduct(ctx, "p1")
	require.NoError(t, err)

	assert.True(t, out.Consistent)
	assert.Equal(t, int64(5), out.CurrentStock)
	assert.Equal(t, int64(5), out.LedgerSum)
	assert.Equal(t, "SKU-p1", out.SKU)
}

func TestAuditProduct_DetectaDeriva(t *testing.T) {
	env := newTestEnv()
	env.seedProduct("p1", 0, 0)
	ctx := context.Background()

	_, err := env.uc.AddStock(ctx, stock.MovementInput{ProductID: "p1", Quantity: 9})
	require.NoError(t, err)

	// Corromper el saldo por fuera del motor (simula una deriva real).
	env.store.products["p1"].CurrentStock = 7

	out, err := newAuditor(env.store).AuditProduct(ctx, "p1")
	require.NoError(t, err)

	assert.False(t, out.Consistent)
	assert.Equal(t, int64(7), out.CurrentStock)
	assert.Equal(t, int64(9), out.LedgerSum)
}

func TestAuditProduct_ProductoInexistente(t *testing.T) {
	env := newTestEnv()

	_, err := newAuditor(env.store).AuditProduct(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMovement(t *testing.T) {
	env := newTestEnv()
	env.seedProduct("p1", 0, 0)
	ctx := context.Background()

	created, err := env.uc.AddStock(ctx, stock.MovementInput{ProductID: "p1", Quantity: 5, Notes: "compra"})
	require.NoError(t, err)

	got, err := env.uc.GetMovement(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, int64(5), got.Quantity)
	assert.Equal(t, "compra", got.Notes)
	require.NotNil(t, got.Product)
	assert.Equal(t, "SKU-p1", got.Product.SKU)
}

func TestGetMovement_Inexistente(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.GetMovement(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
