package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/application/dto"
	"github.com/jhoicas/stock-pesca/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName  string
	Store    *inventory.Store
	Commands *inventory.Commands
	Drafts   *inventory.DraftRegistry
	Reports  *inventory.ReportUseCase
	Backups  *inventory.BackupUseCase
	Now      func() time.Time
	Log      zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})

	api := app.Group("/api")

	productHandler := NewProductHandler(deps.Store, deps.Commands, deps.Log)
	api.Get("/categories", productHandler.Categories)
	api.Get("/pricing", productHandler.Pricing)

	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/stats", productHandler.Stats)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	drafts := api.Group("/drafts")
	draftHandler := NewDraftHandler(deps.Drafts, deps.Log)
	drafts.Post("/", draftHandler.Open)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Patch("/:id", draftHandler.Patch)
	drafts.Delete("/:id", draftHandler.Cancel)
	drafts.Post("/:id/submit", draftHandler.Submit)

	transferHandler := NewTransferHandler(deps.Commands, deps.Reports, deps.Backups, deps.Now, deps.Log)
	api.Get("/export", transferHandler.Export)
	api.Post("/import", transferHandler.Import)
	api.Post("/backups", transferHandler.Backup)

	reports := api.Group("/reports")
	reports.Get("/inventory.xlsx", transferHandler.Spreadsheet)
	reports.Get("/low-stock.pdf", transferHandler.LowStockPDF)
}
