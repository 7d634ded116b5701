package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/domain"
	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. CurrentStock inicia en 0 y
// solo se muta vía el motor de movimientos; aquí nunca se toca.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un nuevo producto con stock 0.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.CategoryID == "" {
		return nil, fmt.Errorf("%w: sku, name y categoryId son requeridos", domain.ErrInvalidInput)
	}
	if in.UnitPrice.LessThan(decimal.Zero) || in.ReorderLevel < 0 {
		return nil, fmt.Errorf("%w: unitPrice y reorderLevel no pueden ser negativos", domain.ErrInvalidInput)
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkRefs(in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}
	if in.UnitMeasure == "" {
		in.UnitMeasure = "unidad"
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		UnitPrice:    in.UnitPrice,
		UnitMeasure:  in.UnitMeasure,
		ReorderLevel: in.ReorderLevel,
		CurrentStock: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	products, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	page := filter.Offset/filter.Limit + 1
	return &dto.ProductListResponse{
		Products:   out,
		Pagination: dto.NewPagination(total, page, filter.Limit),
	}, nil
}

// Update actualiza los atributos editables de un producto. El SKU y el saldo no cambian.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.CategoryID == "" {
		return nil, fmt.Errorf("%w: name y categoryId son requeridos", domain.ErrInvalidInput)
	}
	if in.UnitPrice.LessThan(decimal.Zero) || in.ReorderLevel < 0 {
		return nil, fmt.Errorf("%w: unitPrice y reorderLevel no pueden ser negativos", domain.ErrInvalidInput)
	}
	if err := uc.checkRefs(in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	product.UnitPrice = in.UnitPrice
	if in.UnitMeasure != "" {
		product.UnitMeasure = in.UnitMeasure
	}
	product.ReorderLevel = in.ReorderLevel
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. El historial de movimientos se conserva.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// checkRefs valida que categoría y proveedor (si viene) existan.
func (uc *ProductUseCase) checkRefs(categoryID, supplierID string) error {
	cat, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("%w: la categoría no existe", domain.ErrInvalidInput)
	}
	if supplierID != "" {
		sup, err := uc.supplierRepo.GetByID(supplierID)
		if err != nil {
			return err
		}
		if sup == nil {
			return fmt.Errorf("%w: el proveedor no existe", domain.ErrInvalidInput)
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		UnitPrice:    p.UnitPrice,
		UnitMeasure:  p.UnitMeasure,
		ReorderLevel: p.ReorderLevel,
		CurrentStock: p.CurrentStock,
		LowStock:     p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
