// Package filestore guarda cada clave como un archivo <key>.json dentro de un directorio.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BlobStore almacén en disco. Las escrituras son atómicas (archivo temporal + rename).
type BlobStore struct {
	mu  sync.Mutex
	dir string
}

// NewBlobStore crea el directorio si no existe.
func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: crear %s: %w", dir, err)
	}
	return &BlobStore{dir: dir}, nil
}

// Path ruta del archivo de key.
func (s *BlobStore) Path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: clave %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get lee el archivo de key; si no existe devuelve domain.ErrNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.Path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("filestore: leer %s: %w", path, err)
	}
	return data, nil
}

// Put reemplaza el archivo de key de forma atómica.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.Path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: escribir: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: cerrar: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("filestore: reemplazar %s: %w", path, err)
	}
	return nil
}
