package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BlobStore guarda cada clave como una fila de kv_store (valor JSONB).
type BlobStore struct {
	pool *pgxpool.Pool
}

// NewBlobStore construye el almacén sobre el pool.
func NewBlobStore(pool *pgxpool.Pool) *BlobStore {
	return &BlobStore{pool: pool}
}

// Get devuelve el valor de key o domain.ErrNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value::text FROM kv_store WHERE key = $1`
	var value string
	err := s.pool.QueryRow(ctx, q, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("kv_store get: %w", err)
	}
	return []byte(value), nil
}

// Put inserta o reemplaza el valor de key. data debe ser JSON válido.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.pool.Exec(ctx, q, key, string(data)); err != nil {
		return fmt.Errorf("kv_store put: %w", err)
	}
	return nil
}
