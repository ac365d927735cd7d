package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/application/dto"
	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
	"github.com/jhoicas/stock-pesca/internal/domain/pricing"
)

// ProductHandler maneja las peticiones HTTP del inventario.
type ProductHandler struct {
	store *inventory.Store
	cmds  *inventory.Commands
	log   zerolog.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(store *inventory.Store, cmds *inventory.Commands, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{store: store, cmds: cmds, log: log}
}

// List godoc
// @Summary      Listar productos (búsqueda y filtro por categoría)
// @Tags         products
// @Produce      json
// @Param        q         query  string  false  "Texto a buscar en el nombre"
// @Param        category  query  string  false  "Categoría (Todas = sin filtro)"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	query := c.Query("q")
	category := entity.Category(c.Query("category"))
	all := h.store.List()
	items := inventory.View(all, query, category)
	return c.JSON(dto.NewProductListResponse(items, query, category, inventory.Summarize(all)))
}

// Stats godoc
// @Summary      Contadores del inventario
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/products/stats [get]
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	st := inventory.Summarize(h.store.List())
	return c.JSON(dto.StatsResponse{Total: st.Total, LowStock: st.LowStock})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	p, err := h.store.Get(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.FromProduct(p))
}

// Create godoc
// @Summary      Crear producto (precio calculado con costo y margen)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	p, err := h.cmds.CreateProduct(c.UserContext(), in.ToInput())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(p))
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	p, err := h.cmds.UpdateProduct(c.UserContext(), id, in.ToInput())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.FromProduct(p))
}

// Delete godoc
// @Summary      Eliminar producto (requiere confirm=true)
// @Tags         products
// @Param        id       path   int   true  "ID del producto"
// @Param        confirm  query  bool  true  "Confirmación del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.cmds.DeleteProduct(c.UserContext(), id, c.QueryBool("confirm", false)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Categories godoc
// @Summary      Categorías del catálogo
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(dto.NewCategoryListResponse())
}

// Pricing godoc
// @Summary      Calcular precio de venta
// @Tags         products
// @Produce      json
// @Param        cost    query  string  false  "Costo"
// @Param        margin  query  string  false  "Margen %"
// @Success      200  {object}  dto.PricingResponse
// @Router       /api/pricing [get]
func (h *ProductHandler) Pricing(c *fiber.Ctx) error {
	cost, margin := c.Query("cost"), c.Query("margin")
	return c.JSON(dto.PricingResponse{
		Cost:   cost,
		Margin: margin,
		Price:  pricing.Format(pricing.DerivePrice(cost, margin)),
	})
}

func productID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
}
