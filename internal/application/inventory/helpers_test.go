package inventory_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
	"github.com/jhoicas/stock-pesca/internal/infrastructure/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testKey = inventory.DefaultStorageKey

var (
	testEpoch = time.UnixMilli(1_700_000_000_000)
	errDisk   = errors.New("disco lleno")
)

// flakyBlobs envuelve un almacén en memoria y permite forzar fallos de escritura.
type flakyBlobs struct {
	*memstore.BlobStore
	failPut bool
}

func newFlakyBlobs() *flakyBlobs {
	return &flakyBlobs{BlobStore: memstore.NewBlobStore()}
}

func (f *flakyBlobs) Put(ctx context.Context, key string, data []byte) error {
	if f.failPut {
		return errDisk
	}
	return f.BlobStore.Put(ctx, key, data)
}

func fixedClock() func() time.Time {
	return func() time.Time { return testEpoch }
}

// newTestStore crea un Store sobre blobs con reloj fijo.
func newTestStore(t *testing.T, blobs *flakyBlobs) *inventory.Store {
	t.Helper()
	storage := inventory.NewStorage(blobs, testKey, zerolog.Nop())
	store, err := inventory.NewStore(context.Background(), storage, inventory.WithClock(fixedClock()))
	require.NoError(t, err)
	return store
}

// seedBlobs guarda una colección inicial directamente en el almacén.
func seedBlobs(t *testing.T, blobs *flakyBlobs, products ...entity.Product) {
	t.Helper()
	data, err := json.Marshal(products)
	require.NoError(t, err)
	require.NoError(t, blobs.BlobStore.Put(context.Background(), testKey, data))
}

// assertPersisted comprueba que el blob guardado coincide con la colección en memoria.
func assertPersisted(t *testing.T, blobs *flakyBlobs, store *inventory.Store) {
	t.Helper()
	want, err := json.Marshal(store.List())
	require.NoError(t, err)
	got, err := blobs.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func product(id int64, name string, cat entity.Category, stock, minStock int) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     name,
		Category: cat,
		Cost:     decimal.NewFromInt(100),
		Margin:   decimal.NewFromInt(30),
		Price:    decimal.NewFromInt(130),
		Stock:    stock,
		MinStock: minStock,
	}
}

func names(products []entity.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func always(entity.Product) bool { return true }
func never(entity.Product) bool  { return false }
