package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: este adaptador no expone Update ni Delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	notes := nullable(movement.Notes)
	createdBy := nullable(movement.CreatedBy)
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		notes, createdBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, notes, created_by, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var notes, createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &notes, &createdBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if notes != nil {
		m.Notes = *notes
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, notes, created_by, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var notes, createdBy *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &notes, &createdBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if notes != nil {
			m.Notes = *notes
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// List lista movimientos globales en un rango de fechas cerrado (paginado),
// más recientes primero, con SKU y nombre del producto. Devuelve también el total.
func (r *StockMovementRepo) List(from, to *time.Time, limit, offset int) ([]repository.MovementWithProduct, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if from != nil {
		where += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		where += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM stock_movements m` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.notes, m.created_by, m.created_at,
		       COALESCE(p.sku, ''), COALESCE(p.name, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id` + where +
		fmt.Sprintf(" ORDER BY m.created_at DESC, m.id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementWithProduct
	for rows.Next() {
		var row repository.MovementWithProduct
		var notes, createdBy *string
		if err := rows.Scan(
			&row.Movement.ID, &row.Movement.ProductID, &row.Movement.Type, &row.Movement.Quantity,
			&notes, &createdBy, &row.Movement.CreatedAt,
			&row.ProductSKU, &row.ProductName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		if notes != nil {
			row.Movement.Notes = *notes
		}
		if createdBy != nil {
			row.Movement.CreatedBy = *createdBy
		}
		list = append(list, row)
	}
	return list, total, rows.Err()
}

// SumByProduct suma las cantidades firmadas del ledger de un producto (auditoría).
func (r *StockMovementRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_movements WHERE product_id = $1`,
		productID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}
