// Package redis implementa repository.BlobStore sobre una clave string de Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	r "github.com/redis/go-redis/v9"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/repository"
	"github.com/jhoicas/stock-pesca/pkg/config"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*r.Client, error) {
	client := r.NewClient(&r.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// BlobStore guarda cada clave como string sin expiración.
type BlobStore struct {
	client r.UniversalClient
}

// NewBlobStore construye el almacén sobre un cliente existente.
func NewBlobStore(client r.UniversalClient) *BlobStore {
	return &BlobStore{client: client}
}

// Get devuelve el valor o domain.ErrNotFound si la clave no existe.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return data, nil
}

// Put sobrescribe el valor de key.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}
