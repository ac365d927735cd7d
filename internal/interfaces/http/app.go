package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/application/dto"
	"github.com/jhoicas/stock-pesca/pkg/config"
)

// NewApp crea la aplicación Fiber con recover, CORS para el shell de escritorio y,
// si existe el archivo de documentación, Swagger UI en /docs.
func NewApp(appName string, cfg config.HTTPConfig, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		Immutable:    true, // los textos de la petición se guardan en el Store y en los borradores
		BodyLimit:    maxImportSize + 1<<20,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_" + fiberStatusCode(code), Message: err.Error()})
		},
	})
	app.Use(recover.New())

	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept",
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.DocsPath != "" {
		if _, err := os.Stat(cfg.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsPath,
				Path:     "docs",
				Title:    "Ancla y Sedal API",
			}))
		} else {
			log.Debug().Str("path", cfg.DocsPath).Msg("sin documentación swagger, /docs deshabilitado")
		}
	}
	return app
}

func fiberStatusCode(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "TOO_LARGE"
	default:
		return "ERROR"
	}
}
