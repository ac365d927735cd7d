package inventory_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

func TestNewStore_SinDatosEmpiezaVacio(t *testing.T) {
	store := newTestStore(t, newFlakyBlobs())
	assert.Equal(t, 0, store.Len())
	assert.NotNil(t, store.List())
}

func TestNewStore_DatosCorruptosEmpiezaVacio(t *testing.T) {
	blobs := newFlakyBlobs()
	require.NoError(t, blobs.Put(context.Background(), testKey, []byte("{no es json")))

	store := newTestStore(t, blobs)
	assert.Equal(t, 0, store.Len())
}

func TestNewStore_CargaColeccionGuardada(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs,
		product(1, "Caña Shimano", entity.CategoryRods, 3, 5),
		product(2, "Reel Daiwa", entity.CategoryReels, 10, 2),
	)

	store := newTestStore(t, blobs)
	assert.Equal(t, []string{"Caña Shimano", "Reel Daiwa"}, names(store.List()))
}

func TestStore_UpsertAltaAsignaIDYPersiste(t *testing.T) {
	ctx := context.Background()
	blobs := newFlakyBlobs()
	store := newTestStore(t, blobs)

	a, err := store.Upsert(ctx, product(0, "Anzuelos 2/0", entity.CategoryHooksWeights, 50, 10))
	require.NoError(t, err)
	b, err := store.Upsert(ctx, product(0, "Lombrices", entity.CategoryBait, 1, 5))
	require.NoError(t, err)

	assert.Equal(t, testEpoch.UnixMilli(), a.ID)
	assert.NotEqual(t, a.ID, b.ID, "dos altas en el mismo milisegundo deben tener IDs distintos")
	assert.Equal(t, []string{"Anzuelos 2/0", "Lombrices"}, names(store.List()))
	assertPersisted(t, blobs, store)
}

func TestStore_UpsertIDNoExistenteAgrega(t *testing.T) {
	store := newTestStore(t, newFlakyBlobs())
	saved, err := store.Upsert(context.Background(), product(999, "Boya", entity.CategoryAccessories, 4, 2))
	require.NoError(t, err)
	assert.NotEqual(t, int64(999), saved.ID)
	assert.Equal(t, 1, store.Len())
}

func TestStore_UpsertReemplazaEnSuPosicion(t *testing.T) {
	ctx := context.Background()
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs,
		product(1, "A", entity.CategoryRods, 1, 1),
		product(2, "B", entity.CategoryRods, 1, 1),
		product(3, "C", entity.CategoryRods, 1, 1),
	)
	store := newTestStore(t, blobs)

	_, err := store.Upsert(ctx, product(2, "B editado", entity.CategoryReels, 9, 1))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B editado", "C"}, names(store.List()))
	got, err := store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryReels, got.Category)
	assert.Equal(t, 9, got.Stock)
	assertPersisted(t, blobs, store)
}

func TestStore_ReplaceCoincidePorID(t *testing.T) {
	ctx := context.Background()
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs,
		product(0, "Sin ID", entity.CategoryOther, 1, 1),
		product(2, "B", entity.CategoryRods, 1, 1),
	)
	store := newTestStore(t, blobs)

	_, err := store.Replace(ctx, product(0, "Sin ID editado", entity.CategoryOther, 8, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Sin ID editado", "B"}, names(store.List()))
	assertPersisted(t, blobs, store)

	_, err = store.Replace(ctx, product(99, "X", entity.CategoryOther, 1, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, store.Len())
}

func TestStore_RemoveConfirmado(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs, product(1, "A", entity.CategoryRods, 1, 1), product(2, "B", entity.CategoryRods, 1, 1))
	store := newTestStore(t, blobs)

	var asked entity.Product
	err := store.Remove(context.Background(), 1, func(p entity.Product) bool {
		asked = p
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, "A", asked.Name, "la confirmación recibe el producto a eliminar")
	assert.Equal(t, []string{"B"}, names(store.List()))
	assertPersisted(t, blobs, store)
}

func TestStore_RemoveRechazadoNoCambiaNada(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs, product(1, "A", entity.CategoryRods, 1, 1))
	store := newTestStore(t, blobs)

	assert.ErrorIs(t, store.Remove(context.Background(), 1, never), domain.ErrNotConfirmed)
	assert.ErrorIs(t, store.Remove(context.Background(), 1, nil), domain.ErrNotConfirmed)
	assert.Equal(t, 1, store.Len())
}

func TestStore_RemoveIDDesconocido(t *testing.T) {
	store := newTestStore(t, newFlakyBlobs())
	assert.ErrorIs(t, store.Remove(context.Background(), 42, always), domain.ErrNotFound)
}

func TestStore_FalloDeEscrituraNoModificaMemoria(t *testing.T) {
	ctx := context.Background()
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs, product(1, "A", entity.CategoryRods, 1, 1))
	store := newTestStore(t, blobs)
	blobs.failPut = true

	_, err := store.Upsert(ctx, product(0, "Nuevo", entity.CategoryRods, 1, 1))
	assert.ErrorIs(t, err, errDisk)
	_, err = store.Upsert(ctx, product(1, "A editado", entity.CategoryRods, 1, 1))
	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, store.Remove(ctx, 1, always), errDisk)
	assert.ErrorIs(t, store.ReplaceAll(ctx, nil), errDisk)

	assert.Equal(t, []string{"A"}, names(store.List()))
	assertPersisted(t, blobs, store)
}

func TestStore_ReplaceAllRespetaDatosTalCual(t *testing.T) {
	blobs := newFlakyBlobs()
	store := newTestStore(t, blobs)

	dup := []entity.Product{
		product(7, "X", entity.CategoryOther, 1, 1),
		product(7, "Y", entity.CategoryOther, 1, 1),
	}
	require.NoError(t, store.ReplaceAll(context.Background(), dup))
	dup[0].Name = "mutado"

	assert.Equal(t, []string{"X", "Y"}, names(store.List()))
	assertPersisted(t, blobs, store)
}

func TestStore_ListNoComparteMemoria(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs, product(1, "A", entity.CategoryRods, 1, 1))
	store := newTestStore(t, blobs)

	list := store.List()
	list[0].Name = "cambiado"
	assert.Equal(t, []string{"A"}, names(store.List()))
}

func TestStore_PersisteBajoLaClaveConfigurada(t *testing.T) {
	blobs := newFlakyBlobs()
	storage := inventory.NewStorage(blobs, "otra_clave", zerolog.Nop())
	store, err := inventory.NewStore(context.Background(), storage)
	require.NoError(t, err)

	_, err = store.Upsert(context.Background(), product(0, "A", entity.CategoryRods, 1, 1))
	require.NoError(t, err)

	_, err = blobs.Get(context.Background(), "otra_clave")
	assert.NoError(t, err)
	_, err = blobs.Get(context.Background(), testKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
