package dto

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse lista de categorías (sin paginación).
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
