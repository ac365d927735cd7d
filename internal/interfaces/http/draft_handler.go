package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/application/dto"
	"github.com/jhoicas/stock-pesca/internal/application/inventory"
)

// DraftHandler expone el formulario de alta/edición como recurso.
type DraftHandler struct {
	drafts *inventory.DraftRegistry
	log    zerolog.Logger
}

// NewDraftHandler construye el handler.
func NewDraftHandler(drafts *inventory.DraftRegistry, log zerolog.Logger) *DraftHandler {
	return &DraftHandler{drafts: drafts, log: log}
}

// Open godoc
// @Summary      Abrir formulario (alta o edición)
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenDraftRequest  false  "product_id para editar"
// @Success      201   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts [post]
func (h *DraftHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenDraftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
	}
	sess, err := h.drafts.Open(in.ProductID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromDraftSession(sess))
}

// Get godoc
// @Summary      Estado del formulario
// @Tags         drafts
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	sess, err := h.drafts.Get(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.FromDraftSession(sess))
}

// Patch godoc
// @Summary      Editar campos del formulario (recalcula el precio)
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.DraftPatchRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [patch]
func (h *DraftHandler) Patch(c *fiber.Ctx) error {
	var in dto.DraftPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	sess, err := h.drafts.Apply(c.Params("id"), in.ToPatch())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.FromDraftSession(sess))
}

// Submit godoc
// @Summary      Guardar el formulario
// @Tags         drafts
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	p, err := h.drafts.Submit(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.FromProduct(p))
}

// Cancel godoc
// @Summary      Descartar el formulario
// @Tags         drafts
// @Param        id   path  string  true  "ID del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [delete]
func (h *DraftHandler) Cancel(c *fiber.Ctx) error {
	if err := h.drafts.Cancel(c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
