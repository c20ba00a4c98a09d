package entity

import "github.com/shopspring/decimal"

// Product representa una fila del inventario.
// Quantity y UnitPrice nunca son negativos; CategoryID nil significa "sin categoría".
type Product struct {
	ID         int64
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	CategoryID *int64
	// CategoryName lo resuelve el repositorio (JOIN); vacío si la categoría no existe.
	CategoryName string
}

// HasCategory indica si el producto referencia alguna categoría.
func (p *Product) HasCategory() bool {
	return p.CategoryID != nil
}
