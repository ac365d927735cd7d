package http

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/application/dto"
	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain"
)

// maxImportSize límite del archivo importado.
const maxImportSize = 10 << 20

// TransferHandler exportación, importación, reportes y copias de seguridad.
type TransferHandler struct {
	cmds    *inventory.Commands
	reports *inventory.ReportUseCase
	backups *inventory.BackupUseCase
	now     func() time.Time
	log     zerolog.Logger
}

// NewTransferHandler construye el handler. reports y backups pueden ser nil.
func NewTransferHandler(cmds *inventory.Commands, reports *inventory.ReportUseCase, backups *inventory.BackupUseCase, now func() time.Time, log zerolog.Logger) *TransferHandler {
	if now == nil {
		now = time.Now
	}
	return &TransferHandler{cmds: cmds, reports: reports, backups: backups, now: now, log: log}
}

// Export godoc
// @Summary      Descargar el inventario como JSON
// @Tags         transfer
// @Produce      json
// @Success      200
// @Router       /api/export [get]
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.cmds.ExportCollection(&buf); err != nil {
		return respondError(c, h.log, err)
	}
	c.Attachment(inventory.ExportFileName(h.now()))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(buf.Bytes())
}

// Import godoc
// @Summary      Reemplazar el inventario con un archivo JSON
// @Tags         transfer
// @Accept       json,mpfd
// @Produce      json
// @Param        file  formData  file  false  "Archivo .json exportado"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	data := c.Body()
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return badRequest(c, "MISSING_FILE", "se requiere el campo file")
		}
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".json") {
			return badRequest(c, "INVALID_FILE", "solo se aceptan archivos .json")
		}
		if fh.Size > maxImportSize {
			return badRequest(c, "FILE_TOO_LARGE", fmt.Sprintf("el archivo supera %d bytes", maxImportSize))
		}
		if data, err = readUpload(fh); err != nil {
			return respondError(c, h.log, err)
		}
	}

	res, err := h.cmds.ImportCollection(c.UserContext(), data)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Bool("replaced", res.Replaced).Int("total", res.Count).Msg("importación procesada")
	return c.JSON(dto.FromImportResult(res))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxImportSize))
}

// Spreadsheet godoc
// @Summary      Inventario en Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/reports/inventory.xlsx [get]
func (h *TransferHandler) Spreadsheet(c *fiber.Ctx) error {
	if h.reports == nil {
		return respondError(c, h.log, domain.ErrNotConfigured)
	}
	data, err := h.reports.Spreadsheet(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Attachment(strings.TrimSuffix(inventory.ExportFileName(h.now()), ".json") + ".xlsx")
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// LowStockPDF godoc
// @Summary      Reporte PDF de artículos con stock bajo
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Router       /api/reports/low-stock.pdf [get]
func (h *TransferHandler) LowStockPDF(c *fiber.Ctx) error {
	if h.reports == nil {
		return respondError(c, h.log, domain.ErrNotConfigured)
	}
	data, err := h.reports.LowStockPDF(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock_bajo.pdf"`)
	return c.Send(data)
}

// Backup godoc
// @Summary      Subir una copia de seguridad
// @Tags         transfer
// @Produce      json
// @Success      201  {object}  dto.BackupResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/backups [post]
func (h *TransferHandler) Backup(c *fiber.Ctx) error {
	if h.backups == nil {
		return respondError(c, h.log, domain.ErrNotConfigured)
	}
	res, err := h.backups.Snapshot(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromBackupResult(res))
}
