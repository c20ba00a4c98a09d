// Package inventory contiene las derivaciones puras del tablero de inventario:
// valor por línea, totales, stock bajo, participación por categoría y filtros.
// Ninguna función guarda estado entre llamadas.
package inventory

import (
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	// LowStockThreshold umbral exclusivo: cantidad < 5 es stock bajo, 5 no lo es.
	LowStockThreshold = 5
	// Uncategorized nombre de grupo para productos sin categoría resoluble.
	Uncategorized = "Uncategorized"
)

// Line un producto con su categoría resuelta y su valor de línea.
type Line struct {
	Product      entity.Product
	CategoryName string
	LineValue    decimal.Decimal
}

// IsLowStock indica si la línea está por debajo del umbral.
func (l Line) IsLowStock() bool {
	return l.Product.Quantity < LowStockThreshold
}

// Snapshot lectura puntual del inventario con sus agregados.
type Snapshot struct {
	Lines         []Line
	TotalValue    decimal.Decimal
	TotalUnits    int
	ItemCount     int
	LowStockCount int
}

// LineValue = cantidad × precio unitario.
func LineValue(p *entity.Product) decimal.Decimal {
	return decimal.NewFromInt(int64(p.Quantity)).Mul(p.UnitPrice)
}

// BuildSnapshot resuelve categorías, calcula el valor de cada línea y los agregados.
// Resolución de categoría: mapa por ID → nombre del JOIN → Uncategorized.
// Devuelve domain.ErrValidation si algún producto es nil o tiene cantidad/precio negativo.
func BuildSnapshot(categories []*entity.Category, products []*entity.Product) (Snapshot, error) {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		if c != nil {
			names[c.ID] = c.Name
		}
	}

	snap := Snapshot{
		Lines:      make([]Line, 0, len(products)),
		TotalValue: decimal.Zero,
	}
	for i, p := range products {
		if p == nil {
			return Snapshot{}, fmt.Errorf("%w: producto nil en posición %d", domain.ErrValidation, i)
		}
		if p.Quantity < 0 {
			return Snapshot{}, fmt.Errorf("%w: cantidad negativa en producto %d", domain.ErrValidation, p.ID)
		}
		if p.UnitPrice.IsNegative() {
			return Snapshot{}, fmt.Errorf("%w: precio negativo en producto %d", domain.ErrValidation, p.ID)
		}

		line := Line{
			Product:      *p,
			CategoryName: resolveCategory(names, p),
			LineValue:    LineValue(p),
		}
		snap.Lines = append(snap.Lines, line)
		snap.TotalValue = snap.TotalValue.Add(line.LineValue)
		snap.TotalUnits += p.Quantity
		if line.IsLowStock() {
			snap.LowStockCount++
		}
	}
	snap.ItemCount = len(snap.Lines)
	return snap, nil
}

func resolveCategory(names map[int64]string, p *entity.Product) string {
	if p.CategoryID == nil {
		return Uncategorized
	}
	if name, ok := names[*p.CategoryID]; ok && name != "" {
		return name
	}
	if p.CategoryName != "" {
		return p.CategoryName
	}
	return Uncategorized
}
