package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.CatalogCache = (*Cache)(nil)

// Cache caché del catálogo en memoria, sin TTL. Cuenta lecturas y escrituras para los tests.
// Set con una generación anterior a la vigente se descarta (cuenta en StaleSets).
type Cache struct {
	mu            sync.Mutex
	catalog       *repository.Catalog
	gen           int64
	fail          error
	Hits          int
	Misses        int
	Sets          int
	StaleSets     int
	Invalidations int
}

// NewCache crea una caché vacía.
func NewCache() *Cache { return &Cache{} }

// FailWith hace que todas las operaciones devuelvan err (nil lo desactiva).
func (c *Cache) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = err
}

// Get devuelve (nil, gen, nil) en miss.
func (c *Cache) Get(context.Context) (*repository.Catalog, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return nil, 0, c.fail
	}
	if c.catalog == nil {
		c.Misses++
		return nil, c.gen, nil
	}
	c.Hits++
	return c.catalog, c.gen, nil
}

func (c *Cache) Set(_ context.Context, gen int64, catalog *repository.Catalog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	if gen != c.gen {
		c.StaleSets++
		return nil
	}
	c.catalog = catalog
	c.Sets++
	return nil
}

func (c *Cache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidations++
	if c.fail != nil {
		return c.fail
	}
	c.gen++
	c.catalog = nil
	return nil
}
