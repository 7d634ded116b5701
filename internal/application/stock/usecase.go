package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/domain"
	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

// Límites de paginación para las consultas de historial.
const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
	defaultListLimit    = 20
	maxListLimit        = 100
)

// StockUseCase es el motor de stock: registra movimientos (IN, OUT, ADJUSTMENT)
// de forma transaccional con bloqueo de fila y actualización condicionada del
// saldo, y expone las consultas de historial sobre el ledger.
//
// Toda mutación de CurrentStock pasa por applyMovement: un único camino
// "aplicar delta firmado + insertar fila del ledger" dentro de una transacción.
type StockUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	notifier     Notifier
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	notifier Notifier,
) *StockUseCase {
	return &StockUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		notifier:     notifier,
	}
}

// MovementInput entrada para registrar un movimiento de stock.
// Quantity es la magnitud (> 0) en Add/Remove y el delta firmado en Adjust.
type MovementInput struct {
	ProductID string
	Quantity  int64
	Notes     string
	CreatedBy string
}

// AddStock registra una entrada (IN): inserta el movimiento y suma Quantity al saldo.
func (uc *StockUseCase) AddStock(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return uc.applyMovement(ctx, in.ProductID, entity.MovementTypeIN, in.Quantity, in.Notes, in.CreatedBy)
}

// RemoveStock registra una salida (OUT): inserta el movimiento con cantidad
// negativa y resta Quantity del saldo. Falla con InsufficientStockError si la
// cantidad supera el saldo disponible.
func (uc *StockUseCase) RemoveStock(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return uc.applyMovement(ctx, in.ProductID, entity.MovementTypeOUT, -in.Quantity, in.Notes, in.CreatedBy)
}

// AdjustStock registra un ajuste manual con delta firmado (positivo o negativo).
// El delta cero y las notas vacías se rechazan aquí, en la capa de validación
// del caller; el ledger en sí no lo exige.
func (uc *StockUseCase) AdjustStock(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	if in.Quantity == 0 {
		return nil, fmt.Errorf("%w: el ajuste no puede ser cero", domain.ErrInvalidInput)
	}
	if in.Notes == "" {
		return nil, fmt.Errorf("%w: un ajuste requiere notas que lo justifiquen", domain.ErrInvalidInput)
	}
	return uc.applyMovement(ctx, in.ProductID, entity.MovementTypeADJUSTMENT, in.Quantity, in.Notes, in.CreatedBy)
}

// applyMovement es la primitiva única del motor: dentro de una transacción
// bloquea la fila del producto (SELECT FOR UPDATE), valida el saldo resultante,
// actualiza el saldo condicionado al valor leído (compare-and-swap) e inserta
// la fila del ledger. O ambas escrituras quedan, o ninguna.
func (uc *StockUseCase) applyMovement(
	ctx context.Context,
	productID, movType string,
	delta int64,
	notes, createdBy string,
) (*dto.MovementResponse, error) {
	var (
		movement *entity.StockMovement
		product  *entity.Product
	)

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		p, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		next := p.CurrentStock + delta
		if next < 0 {
			if movType == entity.MovementTypeOUT {
				return &domain.InsufficientStockError{Available: p.CurrentStock, Requested: -delta}
			}
			return fmt.Errorf("%w: el ajuste dejaría el stock en %d", domain.ErrInvalidInput, next)
		}

		if err := productRepo.UpdateStockChecked(p.ID, p.CurrentStock, next); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Type:      movType,
			Quantity:  delta,
			Notes:     notes,
			CreatedBy: createdBy,
			CreatedAt: time.Now(),
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}

		p.CurrentStock = next
		movement = mov
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Alerta de stock bajo: best-effort, nunca afecta la operación ya confirmada.
	if delta < 0 && product.IsLowStock() {
		if err := uc.notifier.NotifyLowStock(ctx, product); err != nil {
			log.Warn().Err(err).Str("product_id", product.ID).Msg("alerta de stock bajo no enviada")
		}
	}

	return uc.toMovementResponse(movement, product), nil
}

// toMovementResponse arma la respuesta denormalizada con producto, categoría y proveedor.
func (uc *StockUseCase) toMovementResponse(mov *entity.StockMovement, product *entity.Product) *dto.MovementResponse {
	ref := &dto.ProductRef{
		ID:           product.ID,
		SKU:          product.SKU,
		Name:         product.Name,
		UnitMeasure:  product.UnitMeasure,
		CurrentStock: product.CurrentStock,
		ReorderLevel: product.ReorderLevel,
	}
	if cat, _ := uc.categoryRepo.GetByID(product.CategoryID); cat != nil {
		ref.Category = &dto.CategoryRef{ID: cat.ID, Name: cat.Name}
	}
	if product.SupplierID != "" {
		if sup, _ := uc.supplierRepo.GetByID(product.SupplierID); sup != nil {
			ref.Supplier = &dto.SupplierRef{ID: sup.ID, Name: sup.Name}
		}
	}
	return &dto.MovementResponse{
		ID:        mov.ID,
		ProductID: mov.ProductID,
		Type:      mov.Type,
		Quantity:  mov.Quantity,
		Notes:     mov.Notes,
		CreatedBy: mov.CreatedBy,
		CreatedAt: mov.CreatedAt,
		Product:   ref,
	}
}

// History devuelve el historial de movimientos de un producto, más recientes primero.
func (uc *StockUseCase) History(ctx context.Context, productID string, limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByProduct(productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Notes:     m.Notes,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// GetMovement obtiene un movimiento del ledger por su ID.
func (uc *StockUseCase) GetMovement(ctx context.Context, id string) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	resp := &dto.MovementResponse{
		ID:        mov.ID,
		ProductID: mov.ProductID,
		Type:      mov.Type,
		Quantity:  mov.Quantity,
		Notes:     mov.Notes,
		CreatedBy: mov.CreatedBy,
		CreatedAt: mov.CreatedAt,
	}
	if product, _ := uc.productRepo.GetByID(mov.ProductID); product != nil {
		resp.Product = &dto.ProductRef{
			ID:           product.ID,
			SKU:          product.SKU,
			Name:         product.Name,
			UnitMeasure:  product.UnitMeasure,
			CurrentStock: product.CurrentStock,
			ReorderLevel: product.ReorderLevel,
		}
	}
	return resp, nil
}

// ListMovements devuelve el listado global paginado, filtrable por rango de fechas cerrado.
func (uc *StockUseCase) ListMovements(ctx context.Context, page, limit int, from, to *time.Time) (*dto.MovementListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := (page - 1) * limit

	rows, total, err := uc.movementRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MovementListItem{
			ID:          r.Movement.ID,
			ProductID:   r.Movement.ProductID,
			ProductSKU:  r.ProductSKU,
			ProductName: r.ProductName,
			Type:        r.Movement.Type,
			Quantity:    r.Movement.Quantity,
			Notes:       r.Movement.Notes,
			CreatedBy:   r.Movement.CreatedBy,
			CreatedAt:   r.Movement.CreatedAt,
		})
	}
	return &dto.MovementListResponse{
		Movements:  items,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}
