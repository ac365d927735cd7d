package inventory_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

type fakeSheet struct{ rows []entity.Product }

func (f *fakeSheet) WriteInventory(_ context.Context, rows []entity.Product) ([]byte, error) {
	f.rows = rows
	return []byte("xlsx"), nil
}

type fakePDF struct {
	shop string
	rows []entity.Product
}

func (f *fakePDF) GenerateLowStockReport(_ context.Context, shop string, rows []entity.Product) ([]byte, error) {
	f.shop, f.rows = shop, rows
	return []byte("%PDF"), nil
}

type fakeSink struct {
	key  string
	data []byte
	err  error
}

func (f *fakeSink) Upload(_ context.Context, key string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key, f.data = key, data
	return "s3://stock-pesca/" + key, nil
}

func TestReportUseCase(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs,
		product(1, "Caña", entity.CategoryRods, 1, 5),
		product(2, "Reel", entity.CategoryReels, 9, 2),
	)
	sheet, pdf := &fakeSheet{}, &fakePDF{}
	uc := inventory.NewReportUseCase(newTestStore(t, blobs), sheet, pdf, "Ancla y Sedal")

	data, err := uc.Spreadsheet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "xlsx", string(data))
	assert.Equal(t, []string{"Caña", "Reel"}, names(sheet.rows))

	data, err = uc.LowStockPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	assert.Equal(t, "Ancla y Sedal", pdf.shop)
	assert.Equal(t, []string{"Caña"}, names(pdf.rows))
}

func TestBackupObjectKey(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "backups/stock_pesca_2024-05-01_1714564800000.json", inventory.BackupObjectKey(ts))
}

func TestBackupUseCase_Snapshot(t *testing.T) {
	blobs := newFlakyBlobs()
	seedBlobs(t, blobs, product(1, "Caña", entity.CategoryRods, 1, 5))
	store := newTestStore(t, blobs)
	sink := &fakeSink{}
	uc := inventory.NewBackupUseCase(store, inventory.NewTransfer(store, zerolog.Nop()), sink, zerolog.Nop())

	res, err := uc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^backups/stock_pesca_\d{4}-\d{2}-\d{2}_\d+\.json$`), res.ObjectKey)
	assert.Equal(t, sink.key, res.ObjectKey)
	assert.Equal(t, "s3://stock-pesca/"+res.ObjectKey, res.Location)
	assert.Equal(t, 1, res.Count)

	var uploaded []entity.Product
	require.NoError(t, json.Unmarshal(sink.data, &uploaded))
	assert.Equal(t, []string{"Caña"}, names(uploaded))
}

func TestBackupUseCase_SinDestino(t *testing.T) {
	store := newTestStore(t, newFlakyBlobs())
	uc := inventory.NewBackupUseCase(store, inventory.NewTransfer(store, zerolog.Nop()), nil, zerolog.Nop())
	assert.False(t, uc.Enabled())
	_, err := uc.Snapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestBackupUseCase_FalloDeSubida(t *testing.T) {
	store := newTestStore(t, newFlakyBlobs())
	boom := errors.New("sin conexión")
	uc := inventory.NewBackupUseCase(store, inventory.NewTransfer(store, zerolog.Nop()), &fakeSink{err: boom}, zerolog.Nop())
	_, err := uc.Snapshot(context.Background())
	assert.ErrorIs(t, err, boom)
}
