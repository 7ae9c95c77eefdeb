// Package system provee los adaptadores reales de reloj e ids para los
// puertos del inventario.
package system

import (
	"time"

	"github.com/google/uuid"
)

// Clock implementa inventory.Clock con el reloj del sistema.
type Clock struct{}

// Now devuelve la hora actual en UTC para que los snapshots sean estables
// entre zonas horarias.
func (Clock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator implementa inventory.IDGenerator con UUID v4.
type UUIDGenerator struct{}

// NewID devuelve un id nuevo.
func (UUIDGenerator) NewID() string { return uuid.New().String() }
