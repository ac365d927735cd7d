// Package pdf genera el reporte de reposición (artículos con stock bajo) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Título + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Categoría | Stock | Mín. | Faltan | Costo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades a reponer / costo estimado               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorAlert   = &props.Color{Red: 192, Green: 0, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ inventory.ReportGenerator = (*LowStockReport)(nil)

// LowStockReport implementa inventory.ReportGenerator.
type LowStockReport struct {
	now func() time.Time
}

// NewLowStockReport construye el generador.
func NewLowStockReport() *LowStockReport { return &LowStockReport{now: time.Now} }

// GenerateLowStockReport genera el PDF y devuelve sus bytes.
func (g *LowStockReport) GenerateLowStockReport(_ context.Context, shop string, rows []entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock bajo", true).
		WithAuthor(shop, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(shop, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(rows) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No hay artículos con stock bajo.", props.Text{
				Size: 10, Align: align.Center, Top: 4, Color: colorGray,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range tableRows(rows) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(totalsRow(rows))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(shop string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(shop, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE STOCK BAJO", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorAlert, Top: 1,
			}),
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Faltan", 1, align.Center),
		h("Costo reposición", 3, align.Right),
	)
}

func tableRows(products []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(string(p.Category), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.Stock), props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorAlert})),
			col.New(1).Add(text.New(strconv.Itoa(p.MinStock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.Missing()), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+replenishCost(p).StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(products []entity.Product) core.Row {
	units := 0
	cost := decimal.Zero
	for _, p := range products {
		units += p.Missing()
		cost = cost.Add(replenishCost(p))
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Unidades a reponer:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}),
			text.New("Costo estimado:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6}),
		),
		col.New(3).Add(
			text.New(strconv.Itoa(units), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New("$"+cost.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 6}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// replenishCost costo de volver al stock mínimo.
func replenishCost(p entity.Product) decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Missing())))
}
