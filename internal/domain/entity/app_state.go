package entity

// PasswordHash guarda la password de borrado derivada con PBKDF2-SHA512
// (salt y hash en hexadecimal). Nunca se persiste en claro.
type PasswordHash struct {
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}

// PrinterSettings configura la impresión de etiquetas (dimensiones en
// pulgadas).
type PrinterSettings struct {
	DefaultWidth    float64 `json:"defaultWidth"`
	DefaultHeight   float64 `json:"defaultHeight"`
	SelectedPrinter string  `json:"selectedPrinter"`
}

// Settings agrupa la configuración persistida junto al estado.
type Settings struct {
	DeletePassword  PasswordHash    `json:"deletePassword"`
	PrinterSettings PrinterSettings `json:"printerSettings"`
}

// AppState es el agregado raíz y la unidad de persistencia: cada mutación
// produce un snapshot completo que se escribe a través del SnapshotStore.
type AppState struct {
	CurrentOperator string     `json:"currentOperator"`
	Shelves         []Shelf    `json:"shelves"`
	Logs            []LogEntry `json:"logs"`
	Settings        Settings   `json:"settings"`
}

// NewAppState devuelve un estado vacío con la configuración de impresión por
// defecto de la aplicación original.
func NewAppState() *AppState {
	return &AppState{
		Shelves: []Shelf{},
		Logs:    []LogEntry{},
		Settings: Settings{
			PrinterSettings: PrinterSettings{
				DefaultWidth:  4,
				DefaultHeight: 2,
			},
		},
	}
}

// Clone devuelve una copia profunda del estado. Las lecturas externas reciben
// siempre un clon para que ninguna mutación escape al control del store.
func (st *AppState) Clone() *AppState {
	cp := *st
	cp.Shelves = make([]Shelf, len(st.Shelves))
	for i, shelf := range st.Shelves {
		s := shelf
		s.Boxes = make([]Box, len(shelf.Boxes))
		for j, box := range shelf.Boxes {
			b := box
			b.Samples = make([]Sample, len(box.Samples))
			copy(b.Samples, box.Samples)
			s.Boxes[j] = b
		}
		cp.Shelves[i] = s
	}
	cp.Logs = make([]LogEntry, len(st.Logs))
	copy(cp.Logs, st.Logs)
	return &cp
}

// FindShelfByCode devuelve el índice de la estantería con ese código exacto
// (sin distinguir por estado), o -1.
func (st *AppState) FindShelfByCode(code string) int {
	for i := range st.Shelves {
		if st.Shelves[i].Code == code {
			return i
		}
	}
	return -1
}

// FindShelf devuelve el índice de la estantería con ese id, o -1.
func (st *AppState) FindShelf(shelfID string) int {
	for i := range st.Shelves {
		if st.Shelves[i].ID == shelfID {
			return i
		}
	}
	return -1
}
