package entity

import (
	"strings"
	"time"
)

// Estados posibles de estanterías, cajas y muestras. El paso a "disposed" y a
// "deleted" parte siempre de "active"; un elemento ya "disposed" puede todavía
// pasar a "deleted".
const (
	StatusActive   = "active"
	StatusDisposed = "disposed"
	StatusDeleted  = "deleted"
)

// Subtipos de muestra: TQ ("tal quale", material tal cual) y MC ("macinato",
// material molido). Se derivan de los prefijos de estantería y caja.
const (
	SampleTypeTQ = "TQ"
	SampleTypeMC = "MC"
)

// Sample es una muestra archivada dentro de una caja. Code incluye el sufijo
// de subtipo separado por espacio (ej. "2501234-001 TQ"); la unicidad se
// comprueba sobre el código sin sufijo y solo dentro de la misma caja.
type Sample struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Type       string     `json:"type"` // TQ | MC
	ShelfID    string     `json:"shelfId"`
	BoxID      string     `json:"boxId"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	DisposedAt *time.Time `json:"disposedAt,omitempty"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
}

// BaseCode devuelve el código sin el sufijo de subtipo (" TQ" / " MC").
func (s Sample) BaseCode() string {
	for _, suffix := range []string{" " + SampleTypeTQ, " " + SampleTypeMC} {
		if strings.HasSuffix(s.Code, suffix) {
			return strings.TrimSuffix(s.Code, suffix)
		}
	}
	return s.Code
}

// FormatSampleCode construye el código completo de una muestra: código
// escaneado + espacio + subtipo.
func FormatSampleCode(code, sampleType string) string {
	return code + " " + sampleType
}
