package cache

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.CatalogCache = Nop{}

// Nop caché desactivada (REDIS_URL vacío): siempre miss, Set e Invalidate no hacen nada.
type Nop struct{}

func (Nop) Get(context.Context) (*repository.Catalog, int64, error) { return nil, 0, nil }
func (Nop) Set(context.Context, int64, *repository.Catalog) error   { return nil }
func (Nop) Invalidate(context.Context) error                        { return nil }
