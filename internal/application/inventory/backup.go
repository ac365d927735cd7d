package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/domain"
)

// BackupResult copia subida.
type BackupResult struct {
	ObjectKey string
	Location  string
	Count     int
	CreatedAt time.Time
}

// BackupUseCase sube copias de la exportación a un almacenamiento de objetos.
type BackupUseCase struct {
	transfer *Transfer
	store    *Store
	sink     BackupSink
	now      func() time.Time
	log      zerolog.Logger
}

// NewBackupUseCase construye el caso de uso. sink nil = copias deshabilitadas.
func NewBackupUseCase(store *Store, transfer *Transfer, sink BackupSink, log zerolog.Logger) *BackupUseCase {
	return &BackupUseCase{store: store, transfer: transfer, sink: sink, now: time.Now, log: log}
}

// Enabled indica si hay un destino configurado.
func (uc *BackupUseCase) Enabled() bool { return uc.sink != nil }

// BackupObjectKey clave del objeto: backups/stock_pesca_<fecha>_<unixmillis>.json.
func BackupObjectKey(t time.Time) string {
	name := strings.TrimSuffix(ExportFileName(t), ".json")
	return fmt.Sprintf("backups/%s_%d.json", name, t.UnixMilli())
}

// Snapshot exporta el inventario y lo sube al destino de copias.
func (uc *BackupUseCase) Snapshot(ctx context.Context) (BackupResult, error) {
	if uc.sink == nil {
		return BackupResult{}, domain.ErrNotConfigured
	}
	data, err := uc.transfer.ExportBytes()
	if err != nil {
		return BackupResult{}, err
	}
	now := uc.now()
	key := BackupObjectKey(now)
	location, err := uc.sink.Upload(ctx, key, data)
	if err != nil {
		return BackupResult{}, fmt.Errorf("backup: subir %q: %w", key, err)
	}
	res := BackupResult{ObjectKey: key, Location: location, Count: uc.store.Len(), CreatedAt: now}
	uc.log.Info().Str("object", key).Int("total", res.Count).Msg("copia de seguridad subida")
	return res, nil
}
