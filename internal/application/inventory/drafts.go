package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// DraftSession vista de un formulario abierto.
type DraftSession struct {
	ID        string
	Mode      Mode
	Draft     Draft
	UpdatedAt time.Time
}

type draftEntry struct {
	form      *FormController
	updatedAt time.Time
}

// DraftRegistry mantiene los formularios abiertos por la API, identificados por UUID.
type DraftRegistry struct {
	mu     sync.Mutex
	store  *Store
	drafts map[string]*draftEntry
	now    func() time.Time
}

// NewDraftRegistry crea un registro vacío sobre el Store.
func NewDraftRegistry(store *Store) *DraftRegistry {
	return &DraftRegistry{
		store:  store,
		drafts: make(map[string]*draftEntry),
		now:    time.Now,
	}
}

// Open abre un formulario: productID 0 = alta, otro valor = edición de ese producto.
func (r *DraftRegistry) Open(productID int64) (DraftSession, error) {
	form := NewFormController(r.store)
	if productID != 0 {
		p, err := r.store.Get(productID)
		if err != nil {
			return DraftSession{}, err
		}
		form.OpenEdit(p)
	} else {
		form.OpenCreate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.NewString()
	e := &draftEntry{form: form, updatedAt: r.now()}
	r.drafts[id] = e
	return session(id, e), nil
}

// Get devuelve el estado de un formulario abierto.
func (r *DraftRegistry) Get(id string) (DraftSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.drafts[id]
	if !ok {
		return DraftSession{}, domain.ErrNotFound
	}
	return session(id, e), nil
}

// Apply modifica campos del borrador.
func (r *DraftRegistry) Apply(id string, patch DraftPatch) (DraftSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.drafts[id]
	if !ok {
		return DraftSession{}, domain.ErrNotFound
	}
	e.form.Apply(patch)
	e.updatedAt = r.now()
	return session(id, e), nil
}

// Submit envía el formulario. Si falla la validación el borrador sigue abierto.
func (r *DraftRegistry) Submit(ctx context.Context, id string) (entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.drafts[id]
	if !ok {
		return entity.Product{}, domain.ErrNotFound
	}
	p, err := e.form.Submit(ctx)
	if err != nil {
		e.updatedAt = r.now()
		return entity.Product{}, err
	}
	delete(r.drafts, id)
	return p, nil
}

// Cancel descarta el borrador.
func (r *DraftRegistry) Cancel(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.drafts[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.form.Cancel()
	delete(r.drafts, id)
	return nil
}

// Len cantidad de formularios abiertos.
func (r *DraftRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

// Prune descarta los borradores sin actividad desde hace más de maxAge. Devuelve cuántos eliminó.
func (r *DraftRegistry) Prune(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	limit := r.now().Add(-maxAge)
	n := 0
	for id, e := range r.drafts {
		if e.updatedAt.Before(limit) {
			delete(r.drafts, id)
			n++
		}
	}
	return n
}

// StartPruneLoop ejecuta Prune periódicamente hasta que ctx se cancele.
func (r *DraftRegistry) StartPruneLoop(ctx context.Context, every, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Prune(maxAge)
			}
		}
	}()
}

func session(id string, e *draftEntry) DraftSession {
	return DraftSession{
		ID:        id,
		Mode:      e.form.Mode(),
		Draft:     e.form.Draft(),
		UpdatedAt: e.updatedAt,
	}
}
