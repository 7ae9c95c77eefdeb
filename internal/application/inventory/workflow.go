package inventory

import (
	"sync"

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/barcode"
	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

// WorkflowState es la foto del cursor de archivado que se muestra al
// operador.
type WorkflowState struct {
	CurrentShelfCode string `json:"currentShelfCode,omitempty"`
	CurrentBoxCode   string `json:"currentBoxCode,omitempty"`
	Step             string `json:"step"` // shelf | box | sample
}

// Workflow es el cursor de archivado de tres pasos: estantería -> caja ->
// muestra. Un ciclo completo archiva una muestra y vuelve al paso estantería;
// Reset vuelve al inicio desde cualquier punto. Es un ciclo lineal estricto,
// no un grafo: no hay cancelación parcial ni más de un cursor activo.
type Workflow struct {
	mu    sync.Mutex
	store *Store

	shelfCode string
	boxCode   string
	step      barcode.Step
}

// NewWorkflow crea el cursor en el paso estantería, sin contexto acumulado.
func NewWorkflow(store *Store) *Workflow {
	return &Workflow{store: store, step: barcode.StepShelf}
}

// Scan encadena el escaneo con el contexto acumulado y avanza el cursor según
// el resultado. Un escaneo de estantería reinicia el contexto en cualquier
// paso (es como empezar un ciclo nuevo sobre otra estantería); el archivado de
// una muestra completa el ciclo y reinicia.
func (w *Workflow) Scan(code string) (*ScanResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	res, err := w.store.Scan(code, w.shelfCode, w.boxCode)
	if err != nil {
		return nil, err
	}

	switch res.Kind {
	case entity.ItemTypeShelf:
		w.shelfCode = code
		w.boxCode = ""
		w.step = barcode.StepBox
	case entity.ItemTypeBox:
		w.boxCode = code
		w.step = barcode.StepSample
	case entity.ItemTypeSample:
		w.shelfCode = ""
		w.boxCode = ""
		w.step = barcode.StepShelf
	}
	return res, nil
}

// Reset vuelve al paso estantería descartando el contexto acumulado.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shelfCode = ""
	w.boxCode = ""
	w.step = barcode.StepShelf
}

// State devuelve la foto actual del cursor.
func (w *Workflow) State() WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WorkflowState{
		CurrentShelfCode: w.shelfCode,
		CurrentBoxCode:   w.boxCode,
		Step:             string(w.step),
	}
}
