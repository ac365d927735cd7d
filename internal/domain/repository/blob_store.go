package repository

import "context"

// BlobStore define el puerto de persistencia clave/valor donde vive la colección serializada (DIP).
// Get devuelve domain.ErrNotFound si la clave no existe.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
