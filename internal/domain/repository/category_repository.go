package repository

import "github.com/jhoicas/cafe-stock-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	// CountProducts cuenta los productos que referencian la categoría
	// (para bloquear el borrado mientras esté en uso).
	CountProducts(categoryID string) (int, error)
}
