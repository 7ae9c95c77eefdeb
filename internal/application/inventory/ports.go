package inventory

import (
	"time"

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

// SnapshotStore define el puerto de persistencia del estado completo (DIP).
// Load devuelve (nil, nil) cuando todavía no existe ningún snapshot.
// Import escribe primero un backup con timestamp del snapshot vigente y
// después reemplaza el contenido por el del archivo importado.
type SnapshotStore interface {
	Load() (*entity.AppState, error)
	Save(state *entity.AppState) error
	Export(state *entity.AppState, path string) error
	Import(path string) (*entity.AppState, error)
}

// Authenticator deriva y verifica la password de borrado masivo.
type Authenticator interface {
	Hash(password string) entity.PasswordHash
	Verify(stored entity.PasswordHash, password string) bool
}

// Clock abstrae el reloj para poder fijar los timestamps en los tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstrae la generación de ids.
type IDGenerator interface {
	NewID() string
}

// Selection identifica los elementos de una operación masiva por id.
type Selection struct {
	Shelves []string `json:"shelves"`
	Boxes   []string `json:"boxes"`
	Samples []string `json:"samples"`
}

// ScanResult describe el efecto de un escaneo para que la interfaz pueda
// componer el mensaje al operador.
type ScanResult struct {
	Kind    string `json:"kind"` // shelf | box | sample
	Code    string `json:"code"` // código resultante (con sufijo si es muestra)
	Created bool   `json:"created"`
}
