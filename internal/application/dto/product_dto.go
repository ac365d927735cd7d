package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// ProductRequest entrada para crear o reemplazar un producto. El precio se calcula en el servidor.
type ProductRequest struct {
	Name     string     `json:"name" form:"name"`
	Category string     `json:"category" form:"category"`
	Cost     NumberText `json:"cost" form:"cost"`
	Margin   NumberText `json:"margin" form:"margin"`
	Stock    NumberText `json:"stock" form:"stock"`
	MinStock NumberText `json:"min_stock" form:"min_stock"`
}

// ToInput convierte la petición en la entrada del comando.
func (r ProductRequest) ToInput() inventory.ProductInput {
	return inventory.ProductInput{
		Name:     r.Name,
		Category: entity.Category(r.Category),
		Cost:     r.Cost.String(),
		Margin:   r.Margin.String(),
		Stock:    r.Stock.String(),
		MinStock: r.MinStock.String(),
	}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CategoryCode string          `json:"category_code,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	Margin       decimal.Decimal `json:"margin"`
	Price        string          `json:"price"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"min_stock"`
	LowStock     bool            `json:"low_stock"`
}

// FromProduct construye la respuesta a partir de la entidad.
func FromProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     string(p.Category),
		CategoryCode: p.Category.Code(),
		Cost:         p.Cost,
		Margin:       p.Margin,
		Price:        p.Price.StringFixed(2),
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		LowStock:     p.IsLowStock(),
	}
}

// StatsResponse contadores del inventario completo.
type StatsResponse struct {
	Total    int `json:"total"`
	LowStock int `json:"low_stock"`
}

// ProductListResponse vista filtrada más los contadores globales.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Query    string            `json:"query"`
	Category string            `json:"category"`
	Stats    StatsResponse     `json:"stats"`
}

// NewProductListResponse arma la respuesta del listado.
func NewProductListResponse(items []entity.Product, query string, category entity.Category, st inventory.Stats) ProductListResponse {
	out := ProductListResponse{
		Items:    make([]ProductResponse, 0, len(items)),
		Query:    query,
		Category: string(category),
		Stats:    StatsResponse{Total: st.Total, LowStock: st.LowStock},
	}
	if out.Category == "" {
		out.Category = string(entity.CategoryAll)
	}
	for _, p := range items {
		out.Items = append(out.Items, FromProduct(p))
	}
	return out
}

// CategoryResponse una categoría del catálogo.
type CategoryResponse struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// CategoryListResponse categorías de producto y el valor de filtro "todas".
type CategoryListResponse struct {
	Items     []CategoryResponse `json:"items"`
	FilterAll CategoryResponse   `json:"filter_all"`
	Default   string             `json:"default"`
}

// NewCategoryListResponse arma el listado de categorías.
func NewCategoryListResponse() CategoryListResponse {
	cats := entity.Categories()
	out := CategoryListResponse{
		Items:     make([]CategoryResponse, 0, len(cats)),
		FilterAll: CategoryResponse{Label: string(entity.CategoryAll), Code: entity.CategoryAll.Code()},
		Default:   string(entity.DefaultCategory()),
	}
	for _, c := range cats {
		out.Items = append(out.Items, CategoryResponse{Label: string(c), Code: c.Code()})
	}
	return out
}

// PricingResponse resultado de la calculadora de precio.
type PricingResponse struct {
	Cost   string `json:"cost"`
	Margin string `json:"margin"`
	Price  string `json:"price"`
}
