package dto

import (
	"time"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain/entity"
)

// OpenDraftRequest abre un formulario; sin product_id es un alta.
type OpenDraftRequest struct {
	ProductID int64 `json:"product_id"`
}

// DraftPatchRequest campos a modificar del borrador (solo los presentes).
type DraftPatchRequest struct {
	Name     *string     `json:"name" form:"name"`
	Category *string     `json:"category" form:"category"`
	Cost     *NumberText `json:"cost" form:"cost"`
	Margin   *NumberText `json:"margin" form:"margin"`
	Stock    *NumberText `json:"stock" form:"stock"`
	MinStock *NumberText `json:"min_stock" form:"min_stock"`
}

// ToPatch convierte la petición al cambio del formulario.
func (r DraftPatchRequest) ToPatch() inventory.DraftPatch {
	var p inventory.DraftPatch
	p.Name = r.Name
	if r.Category != nil {
		c := entity.Category(*r.Category)
		p.Category = &c
	}
	p.Cost = textPtr(r.Cost)
	p.Margin = textPtr(r.Margin)
	p.Stock = textPtr(r.Stock)
	p.MinStock = textPtr(r.MinStock)
	return p
}

func textPtr(n *NumberText) *string {
	if n == nil {
		return nil
	}
	s := n.String()
	return &s
}

// DraftFields campos del formulario como texto.
type DraftFields struct {
	ProductID int64  `json:"product_id,omitempty"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Cost      string `json:"cost"`
	Margin    string `json:"margin"`
	Price     string `json:"price"`
	Stock     string `json:"stock"`
	MinStock  string `json:"min_stock"`
}

// DraftResponse estado de un formulario abierto.
type DraftResponse struct {
	ID        string      `json:"id"`
	Mode      string      `json:"mode"`
	Draft     DraftFields `json:"draft"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// FromDraftSession construye la respuesta.
func FromDraftSession(s inventory.DraftSession) DraftResponse {
	return DraftResponse{
		ID:   s.ID,
		Mode: s.Mode.String(),
		Draft: DraftFields{
			ProductID: s.Draft.ID,
			Name:      s.Draft.Name,
			Category:  string(s.Draft.Category),
			Cost:      s.Draft.Cost,
			Margin:    s.Draft.Margin,
			Price:     s.Draft.Price,
			Stock:     s.Draft.Stock,
			MinStock:  s.Draft.MinStock,
		},
		UpdatedAt: s.UpdatedAt,
	}
}
