// Package memory implementa los puertos de persistencia en memoria con la misma semántica
// que el adaptador PostgreSQL (IDs asignados por el almacén, FK de categoría, CHECK >= 0).
// Se usa en los tests de casos de uso y de HTTP.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var (
	_ repository.CategoryRepository  = categoryView{}
	_ repository.ProductTxRepository = productView{}
)

// Store almacén en memoria seguro para uso concurrente.
// Products() y Categories() lo exponen como repositorios; Store mismo implementa el TxRunner.
type Store struct {
	mu         sync.Mutex
	txMu       sync.Mutex
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	nextCatID  int64
	nextProdID int64
	fail       error
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]entity.Category),
		products:   make(map[int64]entity.Product),
		nextCatID:  1,
		nextProdID: 1,
	}
}

// FailWith hace que todas las operaciones fallen con domain.ErrStoreUnavailable envolviendo err.
// nil restablece el funcionamiento normal.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// AddCategory inserta una categoría y devuelve su ID.
func (s *Store) AddCategory(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextCatID
	s.nextCatID++
	s.categories[id] = entity.Category{ID: id, Name: name}
	return id
}

// RemoveCategory elimina la categoría y deja sin categoría a sus productos (ON DELETE SET NULL).
func (s *Store) RemoveCategory(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.categories, id)
	for pid, p := range s.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			s.products[pid] = p
		}
	}
}

func (s *Store) check() error {
	if s.fail != nil {
		return fmt.Errorf("memory: %w: %w", domain.ErrStoreUnavailable, s.fail)
	}
	return nil
}

// ── CategoryRepository ───────────────────────────────────────────────────────

// ListCategories devuelve las categorías ordenadas por id.
func (s *Store) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory: %w: %w", domain.ErrStoreUnavailable, err)
	}
	list := make([]*entity.Category, 0, len(s.categories))
	for _, c := range s.categories {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// ── ProductRepository ────────────────────────────────────────────────────────

// ListProducts devuelve los productos ordenados por id con CategoryName resuelto.
func (s *Store) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory: %w: %w", domain.ErrStoreUnavailable, err)
	}
	list := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, s.joined(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetProduct obtiene un producto; (nil, nil) si no existe.
func (s *Store) GetProduct(_ context.Context, id int64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return s.joined(p), nil
}

// CreateProduct valida, asigna ID y persiste.
func (s *Store) CreateProduct(_ context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return err
	}
	if err := s.validate(p); err != nil {
		return err
	}
	p.ID = s.nextProdID
	s.nextProdID++
	s.products[p.ID] = stored(p)
	return nil
}

// UpdateQuantity fija la cantidad absoluta.
func (s *Store) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return err
	}
	if quantity < 0 {
		return fmt.Errorf("%w: cantidad negativa", domain.ErrValidation)
	}
	p, ok := s.products[id]
	if !ok {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	p.Quantity = quantity
	s.products[id] = p
	return nil
}

// UpdateDetails actualiza nombre, precio y categoría (no la cantidad).
func (s *Store) UpdateDetails(_ context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return err
	}
	if err := s.validate(p); err != nil {
		return err
	}
	cur, ok := s.products[p.ID]
	if !ok {
		return fmt.Errorf("producto %d: %w", p.ID, domain.ErrNotFound)
	}
	next := stored(p)
	next.Quantity = cur.Quantity
	s.products[p.ID] = next
	return nil
}

// DeleteProduct elimina por ID; ErrNotFound si no existe.
func (s *Store) DeleteProduct(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return err
	}
	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	delete(s.products, id)
	return nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// Run serializa fn con las demás transacciones. No hay rollback: fn debe escribir al final.
func (s *Store) Run(ctx context.Context, fn func(products repository.ProductTxRepository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	err := s.check()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(productView{s})
}

// Products vista de Store como repository.ProductTxRepository.
func (s *Store) Products() repository.ProductTxRepository {
	return productView{s}
}

// Categories vista de Store como repository.CategoryRepository.
func (s *Store) Categories() repository.CategoryRepository {
	return categoryView{s}
}

// GetCategory obtiene una categoría; (nil, nil) si no existe.
func (s *Store) GetCategory(_ context.Context, id int64) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) validate(p *entity.Product) error {
	switch {
	case p == nil:
		return fmt.Errorf("%w: producto nil", domain.ErrValidation)
	case p.Name == "":
		return fmt.Errorf("%w: nombre vacío", domain.ErrValidation)
	case p.Quantity < 0:
		return fmt.Errorf("%w: cantidad negativa", domain.ErrValidation)
	case p.UnitPrice.IsNegative():
		return fmt.Errorf("%w: precio negativo", domain.ErrValidation)
	}
	if p.CategoryID != nil {
		if _, ok := s.categories[*p.CategoryID]; !ok {
			return fmt.Errorf("%w: la categoría %d no existe", domain.ErrValidation, *p.CategoryID)
		}
	}
	return nil
}

func (s *Store) joined(p entity.Product) *entity.Product {
	out := p
	out.CategoryName = ""
	if p.CategoryID != nil {
		id := *p.CategoryID
		out.CategoryID = &id
		out.CategoryName = s.categories[id].Name
	}
	return &out
}

func stored(p *entity.Product) entity.Product {
	out := *p
	out.CategoryName = ""
	if p.CategoryID != nil {
		id := *p.CategoryID
		out.CategoryID = &id
	}
	return out
}

type productView struct{ s *Store }

func (v productView) List(ctx context.Context) ([]*entity.Product, error) {
	return v.s.ListProducts(ctx)
}
func (v productView) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return v.s.GetProduct(ctx, id)
}

// GetForUpdate igual que GetByID; el bloqueo lo da Store.Run.
func (v productView) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return v.s.GetProduct(ctx, id)
}
func (v productView) Create(ctx context.Context, p *entity.Product) error {
	return v.s.CreateProduct(ctx, p)
}
func (v productView) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return v.s.UpdateQuantity(ctx, id, quantity)
}
func (v productView) UpdateDetails(ctx context.Context, p *entity.Product) error {
	return v.s.UpdateDetails(ctx, p)
}
func (v productView) Delete(ctx context.Context, id int64) error {
	return v.s.DeleteProduct(ctx, id)
}

type categoryView struct{ s *Store }

func (v categoryView) List(ctx context.Context) ([]*entity.Category, error) {
	return v.s.ListCategories(ctx)
}
func (v categoryView) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return v.s.GetCategory(ctx, id)
}
