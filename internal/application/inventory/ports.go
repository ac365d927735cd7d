package inventory

import (
	"context"

	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// Confirmation pregunta al usuario antes de una operación destructiva. true = confirmado.
type Confirmation func(p entity.Product) bool

// SpreadsheetWriter genera la hoja de cálculo del inventario (XLSX).
type SpreadsheetWriter interface {
	WriteInventory(ctx context.Context, rows []entity.Product) ([]byte, error)
}

// ReportGenerator genera el PDF de artículos con stock bajo.
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, shop string, rows []entity.Product) ([]byte, error)
}

// BackupSink guarda una copia de la exportación fuera del equipo y devuelve la clave del objeto.
type BackupSink interface {
	Upload(ctx context.Context, objectKey string, data []byte) (string, error)
}
