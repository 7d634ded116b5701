package repository

import "github.com/jhoicas/cafe-stock-api/internal/domain/entity"

// ProductFilter filtros para listados de productos.
type ProductFilter struct {
	CategoryID string
	LowStock   bool // solo productos bajo su umbral de reposición
	Search     string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para productos.
//
// GetForUpdate, UpdateStockChecked y ListBelowReorderForUpdate son las primitivas
// del motor de stock y solo deben usarse con repositorios atados a una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, int, error)
	Update(product *entity.Product) error
	Delete(id string) error

	// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStockChecked actualiza el saldo solo si sigue valiendo expected
	// (compare-and-swap). Devuelve domain.ErrConflict si la fila cambió.
	UpdateStockChecked(id string, expected, next int64) error
	// ListBelowReorderForUpdate lista y bloquea (ORDER BY id FOR UPDATE) los
	// productos con current_stock < reorder_level.
	ListBelowReorderForUpdate() ([]*entity.Product, error)
}
