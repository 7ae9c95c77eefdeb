package inventory

import (
	"strings"
	"time"

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

// SearchQuery filtra el inventario aplanado. Todos los campos son opcionales;
// Text compara por subcadena sin distinguir mayúsculas.
type SearchQuery struct {
	Text   string
	Kind   string // shelf | box | sample | "" (todos)
	Status string // active | disposed | deleted | "" (todos)
}

// SearchResult es una fila aplanada de la jerarquía con su localización.
type SearchResult struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	ShelfCode string    `json:"shelfCode,omitempty"`
	BoxCode   string    `json:"boxCode,omitempty"`
	Type      string    `json:"type,omitempty"` // subtipo TQ/MC, solo muestras
	CreatedAt time.Time `json:"createdAt"`
}

// Search recorre el snapshot en orden de jerarquía y devuelve las filas que
// pasan el filtro. Operación de solo lectura: no toca el registro de
// auditoría.
func (s *Store) Search(q SearchQuery) []SearchResult {
	state := s.State()
	text := strings.ToLower(q.Text)

	matches := func(kind, code, status string) bool {
		if q.Kind != "" && q.Kind != kind {
			return false
		}
		if q.Status != "" && q.Status != status {
			return false
		}
		return text == "" || strings.Contains(strings.ToLower(code), text)
	}

	results := []SearchResult{}
	for _, shelf := range state.Shelves {
		if matches(entity.ItemTypeShelf, shelf.Code, shelf.Status) {
			results = append(results, SearchResult{
				ID: shelf.ID, Kind: entity.ItemTypeShelf, Code: shelf.Code,
				Status: shelf.Status, CreatedAt: shelf.CreatedAt,
			})
		}
		for _, box := range shelf.Boxes {
			if matches(entity.ItemTypeBox, box.Code, box.Status) {
				results = append(results, SearchResult{
					ID: box.ID, Kind: entity.ItemTypeBox, Code: box.Code,
					Status: box.Status, ShelfCode: shelf.Code, CreatedAt: box.CreatedAt,
				})
			}
			for _, sample := range box.Samples {
				if matches(entity.ItemTypeSample, sample.Code, sample.Status) {
					results = append(results, SearchResult{
						ID: sample.ID, Kind: entity.ItemTypeSample, Code: sample.Code,
						Status: sample.Status, ShelfCode: shelf.Code, BoxCode: box.Code,
						Type: sample.Type, CreatedAt: sample.CreatedAt,
					})
				}
			}
		}
	}
	return results
}
