package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y auditoría del ledger.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetStockSummary agregados del inventario en una sola consulta, más el conteo
// de movimientos de los últimos 7 días. Como corre sobre una conexión fuera de
// transacción, cada subconsulta ve un snapshot consistente de las dos tablas.
func (r *ReportRepo) GetStockSummary(ctx context.Context) (*repository.StockSummaryResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products)                                            AS total_products,
	    (SELECT COUNT(*) FROM products WHERE current_stock < reorder_level)        AS low_stock_count,
	    (SELECT COUNT(*) FROM products WHERE current_stock = 0)                    AS out_of_stock_count,
	    (SELECT COALESCE(SUM(current_stock * unit_price), 0) FROM products)        AS total_value,
	    (SELECT COUNT(*) FROM stock_movements
	      WHERE created_at >= now() - INTERVAL '7 days')                           AS recent_movements`

	var s repository.StockSummaryResult
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalProducts, &s.LowStockCount, &s.OutOfStockCount, &s.TotalValue, &s.RecentMovements,
	)
	if err != nil {
		return nil, fmt.Errorf("report.GetStockSummary: %w", err)
	}
	return &s, nil
}

// ListLowStock productos bajo su umbral con categoría, proveedor y déficit.
func (r *ReportRepo) ListLowStock(ctx context.Context) ([]repository.LowStockResult, error) {
	const query = `
	SELECT
	    p.id, p.sku, p.name,
	    COALESCE(c.name, ''), COALESCE(s.name, ''),
	    p.current_stock, p.reorder_level,
	    p.reorder_level - p.current_stock AS deficit
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers  s ON s.id = p.supplier_id
	WHERE p.current_stock < p.reorder_level
	ORDER BY deficit DESC, p.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ListLowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockResult
	for rows.Next() {
		var row repository.LowStockResult
		if err := rows.Scan(
			&row.ProductID, &row.SKU, &row.Name,
			&row.CategoryName, &row.SupplierName,
			&row.CurrentStock, &row.ReorderLevel, &row.Deficit,
		); err != nil {
			return nil, fmt.Errorf("report.ListLowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListInventory filas del reporte de valorización (saldo × precio por producto).
func (r *ReportRepo) ListInventory(ctx context.Context) ([]repository.InventoryRowResult, error) {
	const query = `
	SELECT
	    p.sku, p.name, COALESCE(c.name, ''), p.unit_measure,
	    p.current_stock, p.unit_price,
	    p.current_stock * p.unit_price AS total_value
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	ORDER BY c.name, p.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ListInventory: %w", err)
	}
	defer rows.Close()

	var results []repository.InventoryRowResult
	for rows.Next() {
		var row repository.InventoryRowResult
		if err := rows.Scan(
			&row.SKU, &row.Name, &row.CategoryName, &row.UnitMeasure,
			&row.CurrentStock, &row.UnitPrice, &row.TotalValue,
		); err != nil {
			return nil, fmt.Errorf("report.ListInventory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListBalanceDrift productos cuyo saldo denormalizado difiere de la suma del
// ledger. La consulta es la definición misma del invariante del sistema.
func (r *ReportRepo) ListBalanceDrift(ctx context.Context) ([]repository.BalanceDriftResult, error) {
	const query = `
	SELECT p.id, p.sku, p.current_stock, COALESCE(SUM(m.quantity), 0) AS ledger_sum
	FROM products p
	LEFT JOIN stock_movements m ON m.product_id = p.id
	GROUP BY p.id, p.sku, p.current_stock
	HAVING p.current_stock <> COALESCE(SUM(m.quantity), 0)
	ORDER BY p.sku`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ListBalanceDrift: %w", err)
	}
	defer rows.Close()

	var results []repository.BalanceDriftResult
	for rows.Next() {
		var row repository.BalanceDriftResult
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.CurrentStock, &row.LedgerSum); err != nil {
			return nil, fmt.Errorf("report.ListBalanceDrift scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
