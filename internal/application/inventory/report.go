package inventory

import (
	"context"

	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// ReportUseCase genera los informes descargables del inventario.
type ReportUseCase struct {
	store *Store
	sheet SpreadsheetWriter
	pdf   ReportGenerator
	shop  string
}

// NewReportUseCase construye el caso de uso. shop es el nombre que aparece en el encabezado del PDF.
func NewReportUseCase(store *Store, sheet SpreadsheetWriter, pdf ReportGenerator, shop string) *ReportUseCase {
	return &ReportUseCase{store: store, sheet: sheet, pdf: pdf, shop: shop}
}

// Spreadsheet hoja XLSX con todo el inventario.
func (uc *ReportUseCase) Spreadsheet(ctx context.Context) ([]byte, error) {
	return uc.sheet.WriteInventory(ctx, uc.store.List())
}

// LowStockPDF PDF con los artículos en o por debajo del stock mínimo.
func (uc *ReportUseCase) LowStockPDF(ctx context.Context) ([]byte, error) {
	return uc.pdf.GenerateLowStockReport(ctx, uc.shop, LowStock(uc.store.List()))
}

// LowStock filtra los artículos con stock bajo conservando el orden.
func LowStock(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}
