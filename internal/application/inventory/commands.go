package inventory

import (
	"context"
	"io"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// ProductInput datos de un producto tal como llegan de la interfaz (números como texto).
// El precio no se recibe: siempre se deriva de costo y margen. Los campos vacíos no modifican el borrador.
type ProductInput struct {
	Name     string
	Category entity.Category
	Cost     string
	Margin   string
	Stock    string
	MinStock string
}

func (in ProductInput) patch() DraftPatch {
	var p DraftPatch
	p.Name = nonEmpty(in.Name)
	if in.Category != "" {
		p.Category = &in.Category
	}
	p.Cost = nonEmpty(in.Cost)
	p.Margin = nonEmpty(in.Margin)
	p.Stock = nonEmpty(in.Stock)
	p.MinStock = nonEmpty(in.MinStock)
	return p
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Commands operaciones de la interfaz sobre el inventario.
// Alta y edición pasan por un FormController nuevo, con las mismas reglas que el formulario interactivo.
type Commands struct {
	store    *Store
	transfer *Transfer
}

// NewCommands construye el conjunto de comandos.
func NewCommands(store *Store, transfer *Transfer) *Commands {
	return &Commands{store: store, transfer: transfer}
}

// CreateProduct da de alta un producto. Los campos vacíos conservan los valores iniciales del formulario.
func (c *Commands) CreateProduct(ctx context.Context, in ProductInput) (entity.Product, error) {
	form := NewFormController(c.store)
	form.OpenCreate()
	form.Apply(in.patch())
	return form.Submit(ctx)
}

// UpdateProduct edita el producto id conservando su ID. Los campos vacíos conservan el valor actual.
func (c *Commands) UpdateProduct(ctx context.Context, id int64, in ProductInput) (entity.Product, error) {
	current, err := c.store.Get(id)
	if err != nil {
		return entity.Product{}, err
	}
	form := NewFormController(c.store)
	form.OpenEdit(current)
	form.Apply(in.patch())
	return form.Submit(ctx)
}

// DeleteProduct elimina el producto si el usuario confirmó.
func (c *Commands) DeleteProduct(ctx context.Context, id int64, confirmed bool) error {
	return c.store.Remove(ctx, id, func(entity.Product) bool { return confirmed })
}

// ImportCollection reemplaza el inventario con el contenido de un archivo exportado.
func (c *Commands) ImportCollection(ctx context.Context, data []byte) (ImportResult, error) {
	if c.transfer == nil {
		return ImportResult{}, domain.ErrNotConfigured
	}
	return c.transfer.Import(ctx, data)
}

// ExportCollection escribe el inventario en w como arreglo JSON.
func (c *Commands) ExportCollection(w io.Writer) error {
	if c.transfer == nil {
		return domain.ErrNotConfigured
	}
	return c.transfer.Export(w)
}
