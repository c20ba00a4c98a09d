package repository

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Catalog lectura cruda del almacén (categorías y productos), antes de cualquier derivación.
type Catalog struct {
	Categories []*entity.Category
	Products   []*entity.Product
}

// CatalogCache caché opcional de Catalog, con generaciones.
// Regla de invalidación: expira por TTL y se invalida tras cada mutación exitosa.
// Invalidate avanza la generación; lo guardado con Set bajo una generación anterior
// ya no se devuelve, así una lectura lenta no repone datos previos a una mutación.
type CatalogCache interface {
	// Get devuelve el catálogo de la generación vigente y esa generación.
	// En miss devuelve (nil, gen, nil): gen es la que debe pasarse a Set.
	Get(ctx context.Context) (*Catalog, int64, error)
	// Set guarda c bajo la generación gen leída antes de consultar el almacén.
	Set(ctx context.Context, gen int64, c *Catalog) error
	Invalidate(ctx context.Context) error
}
