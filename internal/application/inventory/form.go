package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
	"github.com/jhoicas/stock-pesca/internal/domain/pricing"
)

// Valores iniciales de un borrador nuevo.
const (
	DefaultMargin   = "30"
	DefaultMinStock = "5"
)

// Mode modo del formulario.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Draft estado del formulario tal como lo escribe el usuario (los números son texto).
type Draft struct {
	ID       int64           `json:"id,omitempty"`
	Name     string          `json:"name"`
	Category entity.Category `json:"category"`
	Cost     string          `json:"cost"`
	Margin   string          `json:"margin"`
	Price    string          `json:"price"`
	Stock    string          `json:"stock"`
	MinStock string          `json:"minStock"`
}

// NewDraft borrador de alta: categoría por defecto, margen 30 y stock mínimo 5.
func NewDraft() Draft {
	return Draft{
		Category: entity.DefaultCategory(),
		Margin:   DefaultMargin,
		MinStock: DefaultMinStock,
	}
}

// DraftFromProduct copia un producto existente en un borrador de edición.
func DraftFromProduct(p entity.Product) Draft {
	return Draft{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Cost:     p.Cost.String(),
		Margin:   p.Margin.String(),
		Price:    pricing.Format(p.Price),
		Stock:    entity.FormatInt(p.Stock),
		MinStock: entity.FormatInt(p.MinStock),
	}
}

// DraftPatch cambios de campos en una sola llamada. Price no es editable.
type DraftPatch struct {
	Name     *string          `json:"name,omitempty"`
	Category *entity.Category `json:"category,omitempty"`
	Cost     *string          `json:"cost,omitempty"`
	Margin   *string          `json:"margin,omitempty"`
	Stock    *string          `json:"stock,omitempty"`
	MinStock *string          `json:"minStock,omitempty"`
}

// ValidationError campos vacíos o inválidos al enviar el formulario.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campos sin completar o inválidos: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// FormController máquina de estados del formulario de alta/edición.
// No es seguro para uso concurrente; DraftRegistry serializa el acceso.
type FormController struct {
	store *Store
	open  bool
	mode  Mode
	draft Draft
}

// NewFormController crea el formulario cerrado con los valores de alta.
func NewFormController(store *Store) *FormController {
	return &FormController{store: store, draft: NewDraft()}
}

// OpenCreate abre el formulario en modo alta con el borrador por defecto.
func (f *FormController) OpenCreate() {
	f.open = true
	f.mode = ModeCreate
	f.draft = NewDraft()
}

// OpenEdit abre el formulario en modo edición con una copia del producto.
func (f *FormController) OpenEdit(p entity.Product) {
	f.open = true
	f.mode = ModeEdit
	f.draft = DraftFromProduct(p)
}

// IsOpen indica si el formulario está abierto.
func (f *FormController) IsOpen() bool { return f.open }

// Mode modo actual.
func (f *FormController) Mode() Mode { return f.mode }

// Draft copia del borrador actual.
func (f *FormController) Draft() Draft { return f.draft }

func (f *FormController) SetName(v string)              { f.draft.Name = v }
func (f *FormController) SetCategory(v entity.Category) { f.draft.Category = v }
func (f *FormController) SetStock(v string)             { f.draft.Stock = v }
func (f *FormController) SetMinStock(v string)          { f.draft.MinStock = v }

// SetCost actualiza el costo y recalcula el precio de venta.
func (f *FormController) SetCost(v string) {
	f.draft.Cost = v
	f.draft.Price = pricing.Format(pricing.DerivePrice(f.draft.Cost, f.draft.Margin))
}

// SetMargin actualiza el margen y recalcula el precio de venta.
func (f *FormController) SetMargin(v string) {
	f.draft.Margin = v
	f.draft.Price = pricing.Format(pricing.DerivePrice(f.draft.Cost, f.draft.Margin))
}

// Apply aplica varios cambios; costo y margen recalculan el precio como los setters.
func (f *FormController) Apply(p DraftPatch) {
	if p.Name != nil {
		f.SetName(*p.Name)
	}
	if p.Category != nil {
		f.SetCategory(*p.Category)
	}
	if p.Cost != nil {
		f.SetCost(*p.Cost)
	}
	if p.Margin != nil {
		f.SetMargin(*p.Margin)
	}
	if p.Stock != nil {
		f.SetStock(*p.Stock)
	}
	if p.MinStock != nil {
		f.SetMinStock(*p.MinStock)
	}
}

// Submit guarda el borrador en el Store y cierra el formulario. En edición reemplaza el registro
// con el ID original (domain.ErrNotFound si ya no existe); en alta agrega uno nuevo.
// Con campos obligatorios vacíos o una categoría fuera del catálogo devuelve *ValidationError y el borrador se conserva.
func (f *FormController) Submit(ctx context.Context) (entity.Product, error) {
	if !f.open {
		return entity.Product{}, domain.ErrFormClosed
	}
	if missing := f.invalidFields(); len(missing) > 0 {
		return entity.Product{}, &ValidationError{Fields: missing}
	}

	p := entity.Product{
		Name:     f.draft.Name,
		Category: f.draft.Category,
		Cost:     pricing.ParseDecimal(f.draft.Cost),
		Margin:   pricing.ParseDecimal(f.draft.Margin),
		Price:    pricing.ParseDecimal(f.draft.Price),
		Stock:    pricing.ParseInt(f.draft.Stock),
		MinStock: pricing.ParseInt(f.draft.MinStock),
	}
	var (
		saved entity.Product
		err   error
	)
	if f.mode == ModeEdit {
		p.ID = f.draft.ID
		saved, err = f.store.Replace(ctx, p)
	} else {
		saved, err = f.store.Upsert(ctx, p)
	}
	if err != nil {
		return entity.Product{}, err
	}
	f.Cancel()
	return saved, nil
}

// Cancel descarta el borrador y cierra el formulario sin tocar el Store.
func (f *FormController) Cancel() {
	f.open = false
	f.mode = ModeCreate
	f.draft = NewDraft()
}

func (f *FormController) invalidFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", f.draft.Name},
		{"cost", f.draft.Cost},
		{"margin", f.draft.Margin},
		{"stock", f.draft.Stock},
		{"minStock", f.draft.MinStock},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	// Vacía se admite: registros importados sin categoría.
	if c := f.draft.Category; c != "" && !c.Valid() {
		missing = append(missing, "category")
	}
	return missing
}
