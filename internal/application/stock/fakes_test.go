package stock_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/cafe-stock-api/internal/domain"
	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore simula la base de datos: productos + ledger de movimientos. El
// fakeTxRunner serializa las transacciones con un mutex (el equivalente del
// bloqueo de fila) y deshace los cambios si la función devuelve error, de modo
// que la atomicidad movimiento+saldo se comporta como en PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]*entity.Product)}
}

func (s *memStore) addProduct(p *entity.Product) {
	cp := *p
	s.products[p.ID] = &cp
}

// snapshot copia el estado para poder restaurarlo en un rollback.
func (s *memStore) snapshot() (map[string]*entity.Product, int) {
	prods := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		prods[id] = &cp
	}
	return prods, len(s.movements)
}

func (s *memStore) restore(prods map[string]*entity.Product, nMovs int) {
	s.products = prods
	s.movements = s.movements[:nMovs]
}

func (s *memStore) balance(productID string) int64 {
	if p, ok := s.products[productID]; ok {
		return p.CurrentStock
	}
	return 0
}

func (s *memStore) ledgerSum(productID string) int64 {
	var sum int64
	for _, m := range s.movements {
		if m.ProductID == productID {
			sum += m.Quantity
		}
	}
	return sum
}

// fakeProductRepo repositorio de productos sobre memStore. Con locking=true
// toma el mutex por llamada (uso fuera de transacción); con false asume que el
// fakeTxRunner ya lo tiene.
type fakeProductRepo struct {
	store   *memStore
	locking bool
}

func (r *fakeProductRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	defer r.lock()()
	r.store.addProduct(p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	defer r.lock()()
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	defer r.lock()()
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	defer r.lock()()
	r.store.addProduct(p)
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	defer r.lock()()
	if _, ok := r.store.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.products, id)
	return nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStockChecked(id string, expected, next int64) error {
	defer r.lock()()
	p, ok := r.store.products[id]
	if !ok || p.CurrentStock != expected {
		return domain.ErrConflict
	}
	p.CurrentStock = next
	return nil
}

func (r *fakeProductRepo) ListBelowReorderForUpdate() ([]*entity.Product, error) {
	defer r.lock()()
	out := make([]*entity.Product, 0)
	for _, p := range r.store.products {
		if p.CurrentStock < p.ReorderLevel {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeMovementRepo ledger append-only sobre memStore.
type fakeMovementRepo struct {
	store   *memStore
	locking bool
}

func (r *fakeMovementRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	defer r.lock()()
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	defer r.lock()()
	for _, m := range r.store.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	defer r.lock()()
	out := make([]*entity.StockMovement, 0)
	// Más recientes primero: recorremos el ledger al revés.
	for i := len(r.store.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.store.movements[i].ProductID == productID {
			cp := *r.store.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) List(from, to *time.Time, limit, offset int) ([]repository.MovementWithProduct, int, error) {
	defer r.lock()()
	all := make([]repository.MovementWithProduct, 0)
	for i := len(r.store.movements) - 1; i >= 0; i-- {
		m := r.store.movements[i]
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		row := repository.MovementWithProduct{Movement: *m}
		if p, ok := r.store.products[m.ProductID]; ok {
			row.ProductSKU = p.SKU
			row.ProductName = p.Name
		}
		all = append(all, row)
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakeMovementRepo) SumByProduct(productID string) (int64, error) {
	defer r.lock()()
	return r.store.ledgerSum(productID), nil
}

// fakeTxRunner serializa las "transacciones" y deshace los cambios si fn falla.
type fakeTxRunner struct {
	store *memStore
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tr.store.mu.Lock()
	defer tr.store.mu.Unlock()

	prods, nMovs := tr.store.snapshot()
	err := fn(
		&fakeProductRepo{store: tr.store},
		&fakeMovementRepo{store: tr.store},
	)
	if err != nil {
		tr.store.restore(prods, nMovs)
		return err
	}
	return nil
}

// fakeCategoryRepo y fakeSupplierRepo para la denormalización de respuestas.
type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) CountProducts(categoryID string) (int, error) { return 0, nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) Delete(id string) error {
	delete(r.suppliers, id)
	return nil
}

// fakeNotifier registra las notificaciones recibidas.
type fakeNotifier struct {
	mu           sync.Mutex
	lowStock     []string // IDs de producto notificados
	reorderCalls int
	reorderCount int
	reorderTotal int64
	failLowStock bool
}

func (n *fakeNotifier) NotifyLowStock(ctx context.Context, p *entity.Product) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failLowStock {
		return context.DeadlineExceeded
	}
	n.lowStock = append(n.lowStock, p.ID)
	return nil
}

func (n *fakeNotifier) NotifyReorderApplied(ctx context.Context, reorderedCount int, totalQuantity int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reorderCalls++
	n.reorderCount = reorderedCount
	n.reorderTotal = totalQuantity
	return nil
}
