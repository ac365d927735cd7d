package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// Store es la fuente de verdad de la colección durante la ejecución.
// Cada mutación construye la colección nueva aparte, la persiste completa y solo entonces la publica:
// si la escritura falla la memoria queda intacta y el blob sigue igual a la memoria.
type Store struct {
	mu       sync.RWMutex
	products []entity.Product
	storage  *Storage
	now      func() time.Time
	lastID   int64
	log      zerolog.Logger
}

// StoreOption configura el Store.
type StoreOption func(*Store)

// WithClock reemplaza el reloj usado para asignar IDs.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithLogger asigna el logger del Store.
func WithLogger(l zerolog.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// NewStore carga la colección una única vez desde storage.
func NewStore(ctx context.Context, storage *Storage, opts ...StoreOption) (*Store, error) {
	s := &Store{storage: storage, now: time.Now, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	products, err := storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.products = products
	s.log.Info().Int("total", len(products)).Str("key", storage.Key()).Msg("inventario cargado")
	return s, nil
}

// Upsert reemplaza en su posición el producto con el mismo ID; si no existe lo agrega al final con un ID nuevo.
func (s *Store) Upsert(ctx context.Context, p entity.Product) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneProducts(s.products)
	replaced := false
	if p.ID != 0 {
		for i := range next {
			if next[i].ID == p.ID {
				next[i] = p
				replaced = true
			}
		}
	}
	if !replaced {
		p.ID = s.nextID()
		next = append(next, p)
	}

	if err := s.storage.Save(ctx, next); err != nil {
		return entity.Product{}, err
	}
	s.products = next
	s.log.Debug().Int64("id", p.ID).Bool("replaced", replaced).Msg("producto guardado")
	return p, nil
}

// Replace sustituye en su posición todos los productos con el ID de p, incluido el ID 0 de
// registros importados sin ID. Si ninguno coincide devuelve domain.ErrNotFound.
func (s *Store) Replace(ctx context.Context, p entity.Product) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneProducts(s.products)
	replaced := false
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = p
			replaced = true
		}
	}
	if !replaced {
		return entity.Product{}, domain.ErrNotFound
	}

	if err := s.storage.Save(ctx, next); err != nil {
		return entity.Product{}, err
	}
	s.products = next
	s.log.Debug().Int64("id", p.ID).Msg("producto reemplazado")
	return p, nil
}

// Remove elimina el producto tras pedir confirmación. Una confirmación rechazada
// devuelve domain.ErrNotConfirmed y no modifica nada.
func (s *Store) Remove(ctx context.Context, id int64, confirm Confirmation) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	// La confirmación puede bloquear (diálogo), no se llama con el lock tomado.
	if confirm == nil || !confirm(p) {
		return domain.ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entity.Product, 0, len(s.products))
	for _, cur := range s.products {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	if len(next) == len(s.products) {
		return domain.ErrNotFound
	}

	if err := s.storage.Save(ctx, next); err != nil {
		return err
	}
	s.products = next
	s.log.Debug().Int64("id", id).Msg("producto eliminado")
	return nil
}

// ReplaceAll descarta la colección y la reemplaza tal cual (usado por la importación).
func (s *Store) ReplaceAll(ctx context.Context, products []entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneProducts(products)
	if err := s.storage.Save(ctx, next); err != nil {
		return err
	}
	s.products = next
	s.log.Info().Int("total", len(next)).Msg("inventario reemplazado")
	return nil
}

// List devuelve una copia de la colección en orden de inserción.
func (s *Store) List() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

// Get devuelve el primer producto con ese ID.
func (s *Store) Get(id int64) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, domain.ErrNotFound
}

// Len cantidad de productos.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// nextID usa la hora actual en milisegundos, siempre creciente y sin chocar con IDs existentes.
// Debe llamarse con el lock tomado.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	for s.hasID(id) {
		id++
	}
	s.lastID = id
	return id
}

func (s *Store) hasID(id int64) bool {
	for _, p := range s.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func cloneProducts(in []entity.Product) []entity.Product {
	out := make([]entity.Product, len(in))
	copy(out, in)
	return out
}
