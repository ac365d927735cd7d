package entity

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-pesca/internal/domain/pricing"
)

// Product representa un artículo del inventario de la tienda.
// Price se deriva de Cost y Margin al guardar desde el formulario; los datos importados se respetan tal cual.
type Product struct {
	ID       int64
	Name     string
	Category Category
	Cost     decimal.Decimal
	Margin   decimal.Decimal // porcentaje
	Price    decimal.Decimal
	Stock    int
	MinStock int
}

// IsLowStock indica si el artículo está en o por debajo de su stock mínimo.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// Missing unidades que faltan para volver al stock mínimo (0 si no falta nada).
func (p Product) Missing() int {
	if p.Stock >= p.MinStock {
		return 0
	}
	return p.MinStock - p.Stock
}

type productJSON struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Margin   decimal.Decimal `json:"margin"`
	Price    string          `json:"price"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"minStock"`
}

// productWire acepta números o cadenas en cualquier campo (archivos de la versión web).
type productWire struct {
	ID       json.RawMessage `json:"id"`
	Name     json.RawMessage `json:"name"`
	Category json.RawMessage `json:"category"`
	Cost     json.RawMessage `json:"cost"`
	Margin   json.RawMessage `json:"margin"`
	Price    json.RawMessage `json:"price"`
	Stock    json.RawMessage `json:"stock"`
	MinStock json.RawMessage `json:"minStock"`
}

// MarshalJSON usa los nombres de campo del archivo de exportación; price siempre con dos decimales.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Cost:     p.Cost,
		Margin:   p.Margin,
		Price:    p.Price.StringFixed(2),
		Stock:    p.Stock,
		MinStock: p.MinStock,
	})
}

// UnmarshalJSON decodifica de forma tolerante: valores numéricos ilegibles quedan en cero y
// los textos que llegan como número o booleano se guardan con su representación JSON.
func (p *Product) UnmarshalJSON(data []byte) error {
	var w productWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = Product{
		ID:       int64(rawDecimal(w.ID).IntPart()),
		Name:     rawString(w.Name),
		Category: Category(rawString(w.Category)),
		Cost:     rawDecimal(w.Cost),
		Margin:   rawDecimal(w.Margin),
		Price:    rawDecimal(w.Price),
		Stock:    rawInt(w.Stock),
		MinStock: rawInt(w.MinStock),
	}
	return nil
}

func rawString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	default:
		return string(raw)
	}
}

func rawDecimal(raw json.RawMessage) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero
		}
		return pricing.ParseDecimal(s)
	}
	d, err := pricing.NewDecimal(string(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func rawInt(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		return pricing.ParseInt(s)
	}
	return int(rawDecimal(raw).IntPart())
}

// FormatInt representa un entero tal como aparece en el formulario.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}
