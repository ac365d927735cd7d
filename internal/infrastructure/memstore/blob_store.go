// Package memstore implementa repository.BlobStore en memoria (tests y demostraciones).
package memstore

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-pesca/internal/domain"
)

// BlobStore almacén clave/valor en memoria, seguro para uso concurrente.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewBlobStore crea un almacén vacío.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

// Get devuelve una copia del valor o domain.ErrNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put guarda una copia del valor.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}
