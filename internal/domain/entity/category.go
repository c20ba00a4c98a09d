package entity

// Category representa una categoría de productos. Se crea y elimina fuera de esta aplicación;
// aquí es de solo lectura.
type Category struct {
	ID   int64
	Name string
}
