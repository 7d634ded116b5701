package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cafe-stock-api/internal/domain"
	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, category_id, supplier_id, unit_price, unit_measure, reorder_level, current_stock, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. CurrentStock inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		product.CategoryID, nullable(product.SupplierID), product.UnitPrice, product.UnitMeasure,
		product.ReorderLevel, product.CurrentStock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU obtiene un producto por su SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

// List lista productos con filtros opcionales y paginación. Devuelve también el total.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if filter.CategoryID != "" {
		where += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	if filter.LowStock {
		where += " AND current_stock < reorder_level"
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM products` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products` + where +
		fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update actualiza los atributos editables. El saldo no se toca por esta vía.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, supplier_id = $5,
		    unit_price = $6, unit_measure = $7, reorder_level = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID,
		nullable(product.SupplierID), product.UnitPrice, product.UnitMeasure,
		product.ReorderLevel, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. Los movimientos del ledger se conservan: si el
// producto tiene historial, la FK lo impide y se reporta como conflicto.
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el producto tiene movimientos registrados", domain.ErrConflict)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Solo tiene sentido con un repositorio atado a una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// UpdateStockChecked actualiza el saldo condicionado al valor leído (compare-and-swap).
// 0 filas afectadas significa que otra operación ganó la carrera: ErrConflict,
// seguro de reintentar desde cero porque nada quedó aplicado.
func (r *ProductRepo) UpdateStockChecked(id string, expected, next int64) error {
	query := `
		UPDATE products
		SET current_stock = $3, updated_at = now()
		WHERE id = $1 AND current_stock = $2`
	tag, err := r.q.Exec(context.Background(), query, id, expected, next)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// ListBelowReorderForUpdate lista y bloquea los productos bajo su umbral.
// El ORDER BY id fija un orden estable de bloqueo para evitar deadlocks entre lotes.
func (r *ProductRepo) ListBelowReorderForUpdate() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE current_stock < reorder_level
		ORDER BY id
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list below reorder: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProduct(rows pgx.Rows) (*entity.Product, error) {
	p, err := scanProductRow(rows)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}

func scanProductRow(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var supplierID *string
	if err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &supplierID,
		&p.UnitPrice, &p.UnitMeasure, &p.ReorderLevel, &p.CurrentStock,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	return &p, nil
}

// nullable convierte cadena vacía en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
