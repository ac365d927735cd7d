package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-pesca/internal/domain"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// ExportFileName nombre sugerido del archivo de exportación (fecha UTC).
func ExportFileName(t time.Time) string {
	return "stock_pesca_" + t.UTC().Format("2006-01-02") + ".json"
}

// ImportResult resultado de una importación. Replaced=false significa que el archivo
// era JSON válido pero no un arreglo y el inventario no se tocó.
type ImportResult struct {
	Replaced bool
	Count    int
}

// Transfer exporta e importa la colección completa como archivo JSON.
type Transfer struct {
	store *Store
	log   zerolog.Logger
}

// NewTransfer construye el adaptador de importación/exportación.
func NewTransfer(store *Store, log zerolog.Logger) *Transfer {
	return &Transfer{store: store, log: log}
}

// ExportBytes serializa la colección actual (arreglo JSON con sangría de dos espacios).
func (t *Transfer) ExportBytes() ([]byte, error) {
	data, err := json.MarshalIndent(t.store.List(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// Export escribe la colección actual en w.
func (t *Transfer) Export(w io.Writer) error {
	data, err := t.ExportBytes()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export: escribir: %w", err)
	}
	return nil
}

// Import reemplaza la colección con el arreglo contenido en data.
// Contenido que no es JSON, o un arreglo con elementos que no son objetos, devuelve domain.ErrMalformedImport sin cambios.
func (t *Transfer) Import(ctx context.Context, data []byte) (ImportResult, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.log.Warn().Err(err).Msg("importación rechazada: no es JSON")
		return ImportResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		t.log.Info().Msg("importación ignorada: el archivo no contiene un arreglo")
		return ImportResult{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	products := make([]entity.Product, 0, len(elems))
	for i, el := range elems {
		el = bytes.TrimSpace(el)
		if len(el) == 0 || el[0] != '{' {
			t.log.Warn().Int("index", i).Msg("importación rechazada: elemento no es un objeto")
			return ImportResult{}, fmt.Errorf("%w: elemento %d no es un objeto", domain.ErrMalformedImport, i)
		}
		var p entity.Product
		if err := json.Unmarshal(el, &p); err != nil {
			return ImportResult{}, fmt.Errorf("%w: elemento %d: %v", domain.ErrMalformedImport, i, err)
		}
		products = append(products, p)
	}

	if err := t.store.ReplaceAll(ctx, products); err != nil {
		return ImportResult{}, err
	}
	t.log.Info().Int("total", len(products)).Msg("datos importados con éxito")
	return ImportResult{Replaced: true, Count: len(products)}, nil
}
