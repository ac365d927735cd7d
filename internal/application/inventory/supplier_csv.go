package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
	"github.com/jhoicas/stock-pesca/internal/domain/pricing"
)

// Columnas de la lista de precios del proveedor: nombre;categoria;costo;margen;stock;minimo.
const (
	colName = iota
	colCategory
	colCost
	colMargin
	colStock
	colMinStock
)

// ParseSupplierCSV convierte una lista de precios de proveedor en productos listos para importar.
// Separador ';' o ',' (se detecta en la primera línea), decimales con coma o punto.
// latin1 decodifica la entrada como ISO-8859-1. Margen y mínimo vacíos toman los valores del formulario.
// Categorías desconocidas quedan como "Otros". Los IDs se asignan 1..n en orden.
func ParseSupplierCSV(r io.Reader, latin1 bool) ([]entity.Product, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("csv: leer: %w", err)
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = detectSeparator(text)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	products := make([]entity.Product, 0)
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %v", domain.ErrInvalidInput, err)
		}
		line++
		if line == 1 && isHeader(rec) {
			continue
		}
		name := field(rec, colName)
		if name == "" {
			continue
		}
		if len(rec) < colStock+1 {
			return nil, fmt.Errorf("%w: csv línea %d: se esperaban al menos %d columnas", domain.ErrInvalidInput, line, colStock+1)
		}

		margin := field(rec, colMargin)
		if margin == "" {
			margin = DefaultMargin
		}
		minStock := field(rec, colMinStock)
		if minStock == "" {
			minStock = DefaultMinStock
		}
		cost := decimalComma(field(rec, colCost))
		margin = decimalComma(margin)

		products = append(products, entity.Product{
			ID:       int64(len(products) + 1),
			Name:     name,
			Category: matchCategory(field(rec, colCategory)),
			Cost:     pricing.ParseDecimal(cost),
			Margin:   pricing.ParseDecimal(margin),
			Price:    pricing.DerivePrice(cost, margin),
			Stock:    pricing.ParseInt(field(rec, colStock)),
			MinStock: pricing.ParseInt(minStock),
		})
	}
	return products, nil
}

func detectSeparator(text string) rune {
	first := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		first = text[:i]
	}
	if strings.Count(first, ";") >= strings.Count(first, ",") && strings.Contains(first, ";") {
		return ';'
	}
	return ','
}

func isHeader(rec []string) bool {
	return strings.EqualFold(field(rec, colName), "nombre")
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func decimalComma(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

func matchCategory(s string) entity.Category {
	for _, c := range entity.Categories() {
		if strings.EqualFold(string(c), s) || strings.EqualFold(c.Code(), s) {
			return c
		}
	}
	return entity.CategoryOther
}
