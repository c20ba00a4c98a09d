package repository

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura para Category (DIP).
type CategoryRepository interface {
	// List devuelve todas las categorías; slice vacío si no hay ninguna.
	List(ctx context.Context) ([]*entity.Category, error)
	// GetByID devuelve (nil, nil) si la categoría no existe.
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
}
