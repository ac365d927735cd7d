// Package excel genera la planilla XLSX del inventario.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// SheetName nombre de la hoja generada.
const SheetName = "Inventario"

// LowStockLabel texto de la columna Estado para artículos con stock bajo.
const LowStockLabel = "STOCK BAJO"

var headers = []string{"Artículo", "Categoría", "Costo", "Margen", "Precio Venta", "Stock", "Stock Mínimo", "Estado"}

var _ inventory.SpreadsheetWriter = (*SheetWriter)(nil)

// SheetWriter implementa inventory.SpreadsheetWriter con excelize.
type SheetWriter struct{}

// NewSheetWriter crea el generador.
func NewSheetWriter() *SheetWriter { return &SheetWriter{} }

// WriteInventory devuelve el XLSX con una fila por producto, en el orden recibido.
func (w *SheetWriter) WriteInventory(ctx context.Context, rows []entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("excel: hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}
	lowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#C00000"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, p := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r := i + 2
		status := ""
		if p.IsLowStock() {
			status = LowStockLabel
		}
		values := []any{
			p.Name,
			string(p.Category),
			p.Cost.InexactFloat64(),
			p.Margin.InexactFloat64(),
			p.Price.Round(2).InexactFloat64(),
			p.Stock,
			p.MinStock,
			status,
		}
		for c, v := range values {
			if s, ok := v.(string); ok && s == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
		if err := f.SetCellStyle(SheetName, cellName(3, r), cellName(5, r), moneyStyle); err != nil {
			return nil, err
		}
		if status != "" {
			if err := f.SetCellStyle(SheetName, cellName(8, r), cellName(8, r), lowStyle); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 32)
	_ = f.SetColWidth(SheetName, "B", "H", 14)
	_ = f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
