package inventory_test

import (
	"math"
	"testing"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
)

func TestAdjustQuantity(t *testing.T) {
	assert.Equal(t, 0, inventory.AdjustQuantity(&entity.Product{Quantity: 0}, -1), "no baja de cero")
	assert.Equal(t, 4, inventory.AdjustQuantity(&entity.Product{Quantity: 3}, 1))
	assert.Equal(t, 0, inventory.AdjustQuantity(&entity.Product{Quantity: 3}, -10))
	assert.Equal(t, 3, inventory.AdjustQuantity(&entity.Product{Quantity: 3}, 0))
}

func TestAdjustQuantity_NoMutaElProducto(t *testing.T) {
	p := &entity.Product{Quantity: 7}
	_ = inventory.AdjustQuantity(p, -2)
	assert.Equal(t, 7, p.Quantity)
}

func TestAdjustQuantity_SaturaEnVezDeDesbordar(t *testing.T) {
	assert.Equal(t, math.MaxInt, inventory.AdjustQuantity(&entity.Product{Quantity: 5}, math.MaxInt))
	assert.Equal(t, math.MaxInt, inventory.AdjustQuantity(&entity.Product{Quantity: math.MaxInt}, 1))
	assert.Equal(t, 0, inventory.AdjustQuantity(&entity.Product{Quantity: 5}, math.MinInt))
}
