package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

func TestFormController_OpenCreateValoresIniciales(t *testing.T) {
	form := inventory.NewFormController(newTestStore(t, newFlakyBlobs()))
	assert.False(t, form.IsOpen())

	form.OpenCreate()
	d := form.Draft()
	assert.True(t, form.IsOpen())
	assert.Equal(t, inventory.ModeCreate, form.Mode())
	assert.Equal(t, entity.CategoryRods, d.Category)
	assert.Equal(t, "30", d.Margin)
	assert.Equal(t, "5", d.MinStock)
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Cost)
	assert.Empty(t, d.Price)
	assert.Empty(t, d.Stock)
}

func TestFormController_CostoYMargenRecalculanPrecio(t *testing.T) {
	form := inventory.NewFormController(newTestStore(t, newFlakyBlobs()))
	form.OpenCreate()

	form.SetCost("100")
	assert.Equal(t, "130.00", form.Draft().Price)

	form.SetMargin("50")
	assert.Equal(t, "150.00", form.Draft().Price)

	form.SetMargin("")
	assert.Equal(t, "100.00", form.Draft().Price, "margen vacío cuenta como cero")

	form.SetCost("abc")
	assert.Equal(t, "0.00", form.Draft().Price)
}

func TestFormController_ApplyRecalculaPrecio(t *testing.T) {
	form := inventory.NewFormController(newTestStore(t, newFlakyBlobs()))
	form.OpenCreate()

	cost, margin := "10.005", "0"
	form.Apply(inventory.DraftPatch{Cost: &cost, Margin: &margin})
	assert.Equal(t, "10.01", form.Draft().Price)
}

func TestFormController_SubmitAlta(t *testing.T) {
	blobs := newFlakyBlobs()
	store := newTestStore(t, blobs)
	form := inventory.NewFormController(store)
	form.OpenCreate()
	form.SetName("Caña Shimano")
	form.SetCost("100")
	form.SetStock("3")

	saved, err := form.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testEpoch.UnixMilli(), saved.ID)
	assert.True(t, saved.Price.Equal(decimal.NewFromInt(130)))
	assert.Equal(t, 3, saved.Stock)
	assert.Equal(t, 5, saved.MinStock)
	assert.True(t, saved.IsLowStock())
	assert.False(t, form.IsOpen(), "el formulario se cierra tras guardar")
	assert.Equal(t, inventory.NewDraft(), form.Draft())
	assertPersisted(t, blobs, store)
}

func TestFormController_SubmitCamposObligatorios(t *testing.T) {
	store := newTestStore(t, newFlakyBlobs())
	form := inventory.NewFormController(store)
	form.OpenCreate()
	form.SetName("  ")
	form.SetCost("100")

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *inventory.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"name", "stock"}, verr.Fields)

	assert.True(t, form.IsOpen(), "el borrador se conserva")
	assert.Equal(t, "100", form.Draft().Cost)
	assert.Equal(t, 0, store.Len())
}

func TestFormController_SubmitCerrado(t *testing.T) {
	form := inventory.NewFormController(newTestStore(t, newFlakyBlobs()))
	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrFormClosed)
}

func TestFormController_EdicionConservaIDYPosicion(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs,
		product(1, "A", entity.CategoryRods, 1, 1),
		product(2, "B", entity.CategoryRods, 1, 1),
	)
	store := newTestStore(t, blobs)
	current, err := store.Get(1)
	require.NoError(t, err)

	form := inventory.NewFormController(store)
	form.OpenEdit(current)
	d := form.Draft()
	assert.Equal(t, inventory.ModeEdit, form.Mode())
	assert.Equal(t, "100", d.Cost)
	assert.Equal(t, "30", d.Margin)
	assert.Equal(t, "130.00", d.Price)
	assert.Equal(t, "1", d.Stock)

	form.SetName("A editado")
	form.SetCost("200")
	saved, err := form.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, "260.00", saved.Price.StringFixed(2))
	assert.Equal(t, []string{"A editado", "B"}, names(store.List()))
	assertPersisted(t, blobs, store)
}

func TestFormController_EdicionSinTocarCostoConservaPrecio(t *testing.T) {
	blobs := newFlakyBlobs()
	imported := product(1, "Importado", entity.CategoryOther, 1, 1)
	imported.Price = decimal.RequireFromString("99.99")
	seedBlobs(t, blobs, imported)
	store := newTestStore(t, blobs)

	form := inventory.NewFormController(store)
	form.OpenEdit(imported)
	form.SetStock("10")
	saved, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "99.99", saved.Price.StringFixed(2))
}

func TestFormController_CancelNoModificaElStore(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs, product(1, "A", entity.CategoryRods, 1, 1))
	store := newTestStore(t, blobs)

	form := inventory.NewFormController(store)
	form.OpenEdit(product(1, "A", entity.CategoryRods, 1, 1))
	form.SetName("no se guarda")
	form.Cancel()

	assert.False(t, form.IsOpen())
	assert.Equal(t, inventory.ModeCreate, form.Mode())
	assert.Equal(t, []string{"A"}, names(store.List()))
}

func TestFormController_AceptaValoresNegativos(t *testing.T) {
	store := newTestStore(t, newFlakyBlobs())
	form := inventory.NewFormController(store)
	form.OpenCreate()
	form.SetName("Devolución")
	form.SetCost("-10")
	form.SetStock("-2")

	saved, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "-13.00", saved.Price.StringFixed(2))
	assert.Equal(t, -2, saved.Stock)
}

func TestFormController_EdicionDeProductoEliminado(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs, product(1, "A", entity.CategoryRods, 1, 1))
	store := newTestStore(t, blobs)

	form := inventory.NewFormController(store)
	form.OpenEdit(product(1, "A", entity.CategoryRods, 1, 1))
	require.NoError(t, store.Remove(context.Background(), 1, always))

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, form.IsOpen(), "el borrador se conserva")
	assert.Equal(t, 0, store.Len())
}

func TestFormController_CategoriaInvalida(t *testing.T) {
	store := newTestStore(t, newFlakyBlobs())
	form := inventory.NewFormController(store)
	form.OpenCreate()
	form.SetName("Bote")
	form.SetCost("10")
	form.SetStock("1")
	form.SetCategory("Botes")

	_, err := form.Submit(context.Background())
	var verr *inventory.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"category"}, verr.Fields)

	form.SetCategory(entity.CategoryAccessories)
	_, err = form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
