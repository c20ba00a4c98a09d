package inventory

import (
	"math"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// MaxQuantity tope de produkty.liczba (INTEGER).
const MaxQuantity = math.MaxInt32

// AdjustQuantity devuelve max(0, cantidad + delta). Decrementar por debajo de cero
// se recorta a cero en lugar de fallar. La suma satura en los límites de int.
func AdjustQuantity(p *entity.Product, delta int) int {
	q := p.Quantity
	switch {
	case delta > 0 && q > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && q < math.MinInt-delta:
		return 0
	}
	return max(0, q+delta)
}
