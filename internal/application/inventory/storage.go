package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
	"github.com/jhoicas/stock-pesca/internal/domain/repository"
)

// DefaultStorageKey clave bajo la que se guarda la colección completa.
const DefaultStorageKey = "fishing_stock"

// Storage guarda la colección completa como un único arreglo JSON bajo una clave fija.
type Storage struct {
	blobs repository.BlobStore
	key   string
	log   zerolog.Logger
}

// NewStorage construye el adaptador. key vacío usa DefaultStorageKey.
func NewStorage(blobs repository.BlobStore, key string, log zerolog.Logger) *Storage {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Storage{blobs: blobs, key: key, log: log}
}

// Key devuelve la clave usada en el almacén.
func (s *Storage) Key() string { return s.key }

// Load lee la colección. Sin datos previos o con datos corruptos devuelve una colección vacía.
// Solo los fallos del almacén se devuelven como error.
func (s *Storage) Load(ctx context.Context) ([]entity.Product, error) {
	data, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []entity.Product{}, nil
		}
		return nil, fmt.Errorf("storage: leer %q: %w", s.key, err)
	}

	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("datos guardados ilegibles, se empieza con inventario vacío")
		return []entity.Product{}, nil
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}

// Save sobrescribe el blob con la colección completa.
func (s *Storage) Save(ctx context.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("storage: serializar: %w", err)
	}
	if err := s.blobs.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("storage: escribir %q: %w", s.key, err)
	}
	return nil
}
