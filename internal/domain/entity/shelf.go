package entity

import "time"

// Shelf es una estantería ("scaffale"), raíz de la jerarquía de almacenaje.
// Code es único en todo el sistema, sin distinguir por estado.
type Shelf struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Prefix    string    `json:"prefix"` // AL | SC | SCAFFALE
	Boxes     []Box     `json:"boxes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FindBox devuelve el índice de la caja con ese id, o -1.
func (s *Shelf) FindBox(boxID string) int {
	for i := range s.Boxes {
		if s.Boxes[i].ID == boxID {
			return i
		}
	}
	return -1
}

// FindBoxByCode devuelve el índice de la caja con ese código exacto, o -1.
func (s *Shelf) FindBoxByCode(code string) int {
	for i := range s.Boxes {
		if s.Boxes[i].Code == code {
			return i
		}
	}
	return -1
}
