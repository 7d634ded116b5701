package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual
)

// StockMovement es una entrada del ledger de stock: inmutable una vez creada.
// Quantity se guarda con signo: positivo entrada, negativo salida, ajuste tal cual.
// El saldo de un producto es siempre SUM(quantity) de sus movimientos.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  int64
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
