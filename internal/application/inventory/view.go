package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// Stats contadores del panel lateral (sobre toda la colección, no sobre el filtro).
type Stats struct {
	Total    int `json:"total"`
	LowStock int `json:"low_stock"`
}

// View proyecta la colección: nombre que contiene query (sin distinguir mayúsculas) Y categoría igual
// a category (CategoryAll o vacío = todas). Conserva el orden y no modifica la entrada.
func View(products []entity.Product, query string, category entity.Category) []entity.Product {
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !category.IsAll() && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Summarize cuenta artículos totales y con stock bajo.
func Summarize(products []entity.Product) Stats {
	st := Stats{Total: len(products)}
	for _, p := range products {
		if p.IsLowStock() {
			st.LowStock++
		}
	}
	return st
}
