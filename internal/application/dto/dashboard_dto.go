package dto

import "github.com/shopspring/decimal"

// DashboardQuery filtros del tablero: Q subcadena del nombre; Categories nombres de categoría.
type DashboardQuery struct {
	Q          string
	Categories []string
}

// DashboardResponse respuesta de GET /api/dashboard.
// Los agregados describen todo el snapshot; Items solo las líneas que pasan los filtros.
type DashboardResponse struct {
	TotalValue        decimal.Decimal `json:"total_value"`
	TotalUnits        int             `json:"total_units"`
	ItemCount         int             `json:"item_count"`
	LowStockCount     int             `json:"low_stock_count"`
	LowStockThreshold int             `json:"low_stock_threshold"`

	Items      []DashboardLineDTO `json:"items"`
	Shares     []CategoryShareDTO `json:"shares"`
	Categories []CategoryResponse `json:"categories"` // opciones del filtro de categorías

	// Degraded=true cuando el almacén falló: datos vacíos + Message para el usuario.
	Degraded bool   `json:"degraded"`
	Message  string `json:"message,omitempty"`
}

// DashboardLineDTO una fila de la tabla del tablero.
type DashboardLineDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	LineValue    decimal.Decimal `json:"line_value"`
	LowStock     bool            `json:"low_stock"`
}

// CategoryShareDTO participación de una categoría en el valor total (gráfico de torta).
type CategoryShareDTO struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

// EmptyDashboard vista degradada: sin datos y con un mensaje visible.
func EmptyDashboard(threshold int, message string) *DashboardResponse {
	return &DashboardResponse{
		TotalValue:        decimal.Zero,
		LowStockThreshold: threshold,
		Items:             []DashboardLineDTO{},
		Shares:            []CategoryShareDTO{},
		Categories:        []CategoryResponse{},
		Degraded:          true,
		Message:           message,
	}
}
