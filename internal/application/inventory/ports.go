package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que leer, ajustar y escribir la cantidad sea atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductTxRepository) error) error
}
