package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. CategoryID nulo = sin categoría.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Quantity   int             `json:"quantity" validate:"min=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	CategoryID *int64          `json:"category_id"`
}

// UpdateProductRequest edición de precio/categoría/nombre (la cantidad va por /quantity).
// ClearCategory=true deja el producto sin categoría.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	CategoryID    *int64           `json:"category_id"`
	ClearCategory bool             `json:"clear_category"`
}

// AdjustQuantityRequest delta a aplicar; el resultado nunca baja de cero.
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
}
