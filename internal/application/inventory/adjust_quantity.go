// Package inventory contiene los casos de uso transaccionales sobre las existencias.
package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	stock "github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// AdjustQuantityUseCase ajusta la cantidad de un producto con bloqueo de fila (SELECT FOR UPDATE).
// La nueva cantidad nunca baja de cero.
type AdjustQuantityUseCase struct {
	txRunner TxRunner
	cache    repository.CatalogCache
	log      *logger.Logger
}

// NewAdjustQuantityUseCase construye el caso de uso.
func NewAdjustQuantityUseCase(txRunner TxRunner, cache repository.CatalogCache, log *logger.Logger) *AdjustQuantityUseCase {
	return &AdjustQuantityUseCase{txRunner: txRunner, cache: cache, log: log.Named("adjust_quantity")}
}

// Increment suma una unidad.
func (uc *AdjustQuantityUseCase) Increment(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	return uc.Adjust(ctx, id, 1)
}

// Decrement resta una unidad; en cero se queda en cero.
func (uc *AdjustQuantityUseCase) Decrement(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	return uc.Adjust(ctx, id, -1)
}

// Adjust inicia una transacción, bloquea la fila del producto, aplica max(0, cantidad+delta)
// y persiste. Devuelve domain.ErrNotFound si el producto no existe y domain.ErrValidation
// si el resultado supera stock.MaxQuantity (el producto queda intacto).
func (uc *AdjustQuantityUseCase) Adjust(ctx context.Context, id int64, delta int) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(products repository.ProductTxRepository) error {
		product, err := products.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
		}

		next := stock.AdjustQuantity(product, delta)
		if next > stock.MaxQuantity {
			return fmt.Errorf("%w: cantidad %d + %d supera el máximo %d", domain.ErrValidation, product.Quantity, delta, stock.MaxQuantity)
		}
		if next == product.Quantity {
			updated = product
			return nil
		}
		if err := products.UpdateQuantity(ctx, id, next); err != nil {
			return err
		}
		product.Quantity = next
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar la caché del catálogo")
	}
	uc.log.Debug().Int64("product_id", id).Int("delta", delta).Int("quantity", updated.Quantity).Msg("cantidad ajustada")

	return &dto.ProductResponse{
		ID:           updated.ID,
		Name:         updated.Name,
		Quantity:     updated.Quantity,
		UnitPrice:    updated.UnitPrice,
		CategoryID:   updated.CategoryID,
		CategoryName: updated.CategoryName,
	}, nil
}
