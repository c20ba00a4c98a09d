package repository

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// Errores: domain.ErrValidation, domain.ErrNotFound y domain.ErrStoreUnavailable (envueltos).
// No hay reintentos ni caché implícita: el llamador vuelve a leer tras cada mutación.
type ProductRepository interface {
	// List devuelve los productos con CategoryName resuelto por JOIN.
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Create persiste el producto y asigna p.ID.
	Create(ctx context.Context, p *entity.Product) error
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	// UpdateDetails actualiza nombre, precio y categoría (no la cantidad).
	UpdateDetails(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id int64) error
}

// ProductLocker bloquea la fila del producto dentro de una transacción (SELECT ... FOR UPDATE).
type ProductLocker interface {
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
}

// ProductTxRepository repositorio de productos atado a una transacción, con bloqueo de fila.
type ProductTxRepository interface {
	ProductRepository
	ProductLocker
}
