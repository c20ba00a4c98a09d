package inventory

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterProducts filtra por subcadena del nombre (sin distinguir mayúsculas, con case folding
// Unicode) y por conjunto de categorías. Ambos filtros vacíos no restringen; juntos se combinan
// con AND. Conserva el orden de entrada.
func FilterProducts(lines []Line, nameQuery string, selectedCategories []string) []Line {
	fold := cases.Fold()
	query := fold.String(nameQuery)

	var allowed map[string]struct{}
	if len(selectedCategories) > 0 {
		allowed = make(map[string]struct{}, len(selectedCategories))
		for _, c := range selectedCategories {
			allowed[c] = struct{}{}
		}
	}

	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if query != "" && !strings.Contains(fold.String(l.Product.Name), query) {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[l.CategoryName]; !ok {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}
