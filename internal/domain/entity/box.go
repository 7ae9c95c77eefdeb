package entity

import "time"

// Box es una caja ("cassetta") dentro de una estantería. Samples conserva el
// orden de inserción (append al archivar, splice al mover).
type Box struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Prefix    string    `json:"prefix"` // AL | CA | CASSETTA
	ShelfID   string    `json:"shelfId"`
	Samples   []Sample  `json:"samples"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FindSample devuelve el índice de la muestra con ese id, o -1.
func (b *Box) FindSample(sampleID string) int {
	for i := range b.Samples {
		if b.Samples[i].ID == sampleID {
			return i
		}
	}
	return -1
}

// HasSampleCode indica si ya existe una muestra cuyo código sin sufijo
// coincide con code.
func (b *Box) HasSampleCode(code string) bool {
	for i := range b.Samples {
		if b.Samples[i].BaseCode() == code {
			return true
		}
	}
	return false
}
