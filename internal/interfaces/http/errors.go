package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/application/dto"
	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain"
)

// respondError traduce errores de dominio a códigos HTTP con dto.ErrorResponse.
func respondError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	var verr *inventory.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Por favor complete todos los campos", Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrNotConfirmed):
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{
			Code: "CONFIRMATION_REQUIRED", Message: "¿Está seguro de eliminar este producto? Repita con confirm=true",
		})
	case errors.Is(err, domain.ErrMalformedImport):
		log.Warn().Err(err).Msg("importación fallida")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: "Error al importar archivo"})
	case errors.Is(err, domain.ErrFormClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FORM_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotConfigured):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Message: err.Error()})
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
