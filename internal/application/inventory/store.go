// Package inventory implementa la máquina de estados del inventario
// jerárquico: estanterías -> cajas -> muestras, con registro de auditoría y
// snapshot persistido tras cada mutación.
//
// Todas las operaciones son síncronas y serializables: un mutex único
// garantiza que cada mutación corre hasta completarse antes de aceptar la
// siguiente (modelo mono-operador). La escritura durable es best-effort: un
// fallo de persistencia se registra y queda consultable, pero nunca revierte
// el estado en memoria.
package inventory

import (
	"fmt"
	"sync"

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain"
	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/barcode"
	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
	"github.com/corsairpublic-create/sample-buddy-log/pkg/logger"
)

// DefaultDeletePassword es la password de borrado que se instala la primera
// vez que arranca la aplicación, heredada del producto original.
const DefaultDeletePassword = "Francimicrob"

// Store posee el AppState y aplica todas las mutaciones del inventario.
type Store struct {
	mu    sync.Mutex
	state *entity.AppState

	snapshots SnapshotStore
	auth      Authenticator
	clock     Clock
	ids       IDGenerator
	log       *logger.Logger

	lastSaveErr error
}

// New carga el snapshot persistido (o crea un estado vacío con los valores de
// impresión indicados) y deja lista la password de borrado por defecto si
// nunca se configuró una.
func New(snapshots SnapshotStore, auth Authenticator, clock Clock, ids IDGenerator, log *logger.Logger, printerDefaults entity.PrinterSettings) (*Store, error) {
	state, err := snapshots.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}
	if state == nil {
		state = entity.NewAppState()
		state.Settings.PrinterSettings = printerDefaults
	}
	if state.Settings.DeletePassword.Hash == "" {
		state.Settings.DeletePassword = auth.Hash(DefaultDeletePassword)
	}
	return &Store{
		state:     state,
		snapshots: snapshots,
		auth:      auth,
		clock:     clock,
		ids:       ids,
		log:       log,
	}, nil
}

// ── Sesión de operador ────────────────────────────────────────────────────────

// Login abre la sesión del operador que firmará el registro de auditoría.
func (s *Store) Login(operator string) error {
	if operator == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentOperator = operator
	s.addLog(entity.ActionLogin, fmt.Sprintf("Operatore %s ha effettuato l'accesso", operator), entity.ItemTypeSystem, "")
	s.persist()
	return nil
}

// Logout registra la salida del operador y cierra la sesión. El registro va
// antes de limpiar el operador: una vez cerrada la sesión las entradas se
// descartan.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentOperator != "" {
		s.addLog(entity.ActionLogout, fmt.Sprintf("Operatore %s ha effettuato il logout", s.state.CurrentOperator), entity.ItemTypeSystem, "")
	}
	s.state.CurrentOperator = ""
	s.persist()
}

// Operator devuelve el operador con sesión abierta ("" si no hay ninguno).
func (s *Store) Operator() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentOperator
}

// ── Escaneo ───────────────────────────────────────────────────────────────────

// scanStep infiere el paso de archivado a partir del contexto acumulado, de
// modo que un código AL se interprete como lo que el paso actual espera.
func scanStep(shelfCtx, boxCtx string) barcode.Step {
	switch {
	case shelfCtx == "":
		return barcode.StepShelf
	case boxCtx == "":
		return barcode.StepBox
	default:
		return barcode.StepSample
	}
}

// Scan clasifica el código y aplica la ruta correspondiente: find-or-create
// para estanterías y cajas, alta de muestra para los códigos de muestra.
// shelfCtx y boxCtx son los códigos acumulados por el flujo de archivado.
func (s *Store) Scan(code, shelfCtx, boxCtx string) (*ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch barcode.ClassifyForStep(code, scanStep(shelfCtx, boxCtx)) {
	case barcode.KindShelf:
		return s.scanShelf(code)
	case barcode.KindBox:
		return s.scanBox(code, shelfCtx)
	default:
		return s.scanSample(code, shelfCtx, boxCtx)
	}
}

func (s *Store) scanShelf(code string) (*ScanResult, error) {
	created := false
	if s.state.FindShelfByCode(code) < 0 {
		s.state.Shelves = append(s.state.Shelves, entity.Shelf{
			ID:        s.ids.NewID(),
			Code:      code,
			Prefix:    barcode.ShelfPrefix(code),
			Boxes:     []entity.Box{},
			Status:    entity.StatusActive,
			CreatedAt: s.clock.Now(),
		})
		created = true
		s.addLog(entity.ActionShelfCreated, fmt.Sprintf("Nuovo scaffale creato: %s", code), entity.ItemTypeShelf, code)
	}
	s.addLog(entity.ActionShelfScanned, fmt.Sprintf("Scaffale scansionato: %s", code), entity.ItemTypeShelf, code)
	s.persist()
	return &ScanResult{Kind: entity.ItemTypeShelf, Code: code, Created: created}, nil
}

func (s *Store) scanBox(code, shelfCtx string) (*ScanResult, error) {
	if shelfCtx == "" {
		return nil, domain.ErrMissingParent
	}
	si := s.state.FindShelfByCode(shelfCtx)
	if si < 0 {
		return nil, domain.ErrMissingParent
	}
	shelf := &s.state.Shelves[si]

	created := false
	if shelf.FindBoxByCode(code) < 0 {
		shelf.Boxes = append(shelf.Boxes, entity.Box{
			ID:        s.ids.NewID(),
			Code:      code,
			Prefix:    barcode.BoxPrefix(code),
			ShelfID:   shelf.ID,
			Samples:   []entity.Sample{},
			Status:    entity.StatusActive,
			CreatedAt: s.clock.Now(),
		})
		created = true
		s.addLog(entity.ActionBoxCreated, fmt.Sprintf("Nuova cassetta creata: %s in scaffale %s", code, shelfCtx), entity.ItemTypeBox, code)
	}
	s.addLog(entity.ActionBoxScanned, fmt.Sprintf("Cassetta scansionata: %s in scaffale %s", code, shelfCtx), entity.ItemTypeBox, code)
	s.persist()
	return &ScanResult{Kind: entity.ItemTypeBox, Code: code, Created: created}, nil
}

func (s *Store) scanSample(code, shelfCtx, boxCtx string) (*ScanResult, error) {
	if shelfCtx == "" || boxCtx == "" {
		return nil, domain.ErrMissingParent
	}
	si := s.state.FindShelfByCode(shelfCtx)
	if si < 0 {
		return nil, domain.ErrMissingParent
	}
	shelf := &s.state.Shelves[si]
	bi := shelf.FindBoxByCode(boxCtx)
	if bi < 0 {
		return nil, domain.ErrMissingParent
	}
	box := &shelf.Boxes[bi]

	if box.HasSampleCode(code) {
		return nil, domain.ErrDuplicateSample
	}

	sampleType := barcode.SampleSubtype(shelfCtx, boxCtx)
	formatted := entity.FormatSampleCode(code, sampleType)
	box.Samples = append(box.Samples, entity.Sample{
		ID:        s.ids.NewID(),
		Code:      formatted,
		Type:      sampleType,
		ShelfID:   shelf.ID,
		BoxID:     box.ID,
		Status:    entity.StatusActive,
		CreatedAt: s.clock.Now(),
	})
	s.addLog(entity.ActionSampleArchived,
		fmt.Sprintf("Campione archiviato: %s in cassetta %s di scaffale %s", formatted, boxCtx, shelfCtx),
		entity.ItemTypeSample, formatted)
	s.persist()
	return &ScanResult{Kind: entity.ItemTypeSample, Code: formatted, Created: true}, nil
}

// ── Alta manual ───────────────────────────────────────────────────────────────

// CreateShelf crea una estantería nueva; a diferencia de Scan, nunca se acopla
// a un código existente.
func (s *Store) CreateShelf(code string) (*entity.Shelf, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.FindShelfByCode(code) >= 0 {
		return nil, domain.ErrAlreadyExists
	}
	shelf := entity.Shelf{
		ID:        s.ids.NewID(),
		Code:      code,
		Prefix:    barcode.ShelfPrefix(code),
		Boxes:     []entity.Box{},
		Status:    entity.StatusActive,
		CreatedAt: s.clock.Now(),
	}
	s.state.Shelves = append(s.state.Shelves, shelf)
	s.addLog(entity.ActionShelfCreatedManual, fmt.Sprintf("Scaffale creato manualmente: %s", code), entity.ItemTypeShelf, code)
	s.persist()
	return &shelf, nil
}

// CreateBox crea una caja nueva bajo la estantería indicada por código.
func (s *Store) CreateBox(shelfCode, boxCode string) (*entity.Box, error) {
	if shelfCode == "" || boxCode == "" {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	si := s.state.FindShelfByCode(shelfCode)
	if si < 0 {
		return nil, domain.ErrMissingParent
	}
	shelf := &s.state.Shelves[si]
	if shelf.FindBoxByCode(boxCode) >= 0 {
		return nil, domain.ErrAlreadyExists
	}
	box := entity.Box{
		ID:        s.ids.NewID(),
		Code:      boxCode,
		Prefix:    barcode.BoxPrefix(boxCode),
		ShelfID:   shelf.ID,
		Samples:   []entity.Sample{},
		Status:    entity.StatusActive,
		CreatedAt: s.clock.Now(),
	}
	shelf.Boxes = append(shelf.Boxes, box)
	s.addLog(entity.ActionBoxCreatedManual, fmt.Sprintf("Cassetta creata manualmente: %s in scaffale %s", boxCode, shelfCode), entity.ItemTypeBox, boxCode)
	s.persist()
	return &box, nil
}

// CreateSample crea una muestra nueva en la caja indicada. La unicidad se
// comprueba sobre el código sin sufijo, solo dentro de la caja.
func (s *Store) CreateSample(shelfCode, boxCode, sampleCode string) (*entity.Sample, error) {
	if shelfCode == "" || boxCode == "" || sampleCode == "" {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	si := s.state.FindShelfByCode(shelfCode)
	if si < 0 {
		return nil, domain.ErrMissingParent
	}
	shelf := &s.state.Shelves[si]
	bi := shelf.FindBoxByCode(boxCode)
	if bi < 0 {
		return nil, domain.ErrMissingParent
	}
	box := &shelf.Boxes[bi]
	if box.HasSampleCode(sampleCode) {
		return nil, domain.ErrDuplicateSample
	}

	sampleType := barcode.SampleSubtype(shelfCode, boxCode)
	sample := entity.Sample{
		ID:        s.ids.NewID(),
		Code:      entity.FormatSampleCode(sampleCode, sampleType),
		Type:      sampleType,
		ShelfID:   shelf.ID,
		BoxID:     box.ID,
		Status:    entity.StatusActive,
		CreatedAt: s.clock.Now(),
	}
	box.Samples = append(box.Samples, sample)
	s.addLog(entity.ActionSampleCreatedManual,
		fmt.Sprintf("Campione creato manualmente: %s in cassetta %s di scaffale %s", sample.Code, boxCode, shelfCode),
		entity.ItemTypeSample, sample.Code)
	s.persist()
	return &sample, nil
}

// ── Renombrado ────────────────────────────────────────────────────────────────
//
// El renombrado sustituye el código in situ SIN revalidar unicidad contra los
// hermanos: es el comportamiento documentado de la aplicación original y se
// conserva tal cual.

// RenameShelf cambia el código de una estantería.
func (s *Store) RenameShelf(shelfID, newCode string) error {
	if newCode == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	si := s.state.FindShelf(shelfID)
	if si < 0 {
		return domain.ErrNotFound
	}
	old := s.state.Shelves[si].Code
	s.state.Shelves[si].Code = newCode
	s.addLog(entity.ActionShelfRenamed, fmt.Sprintf("Scaffale rinominato da %s a %s", old, newCode), entity.ItemTypeShelf, newCode)
	s.persist()
	return nil
}

// RenameBox cambia el código de una caja.
func (s *Store) RenameBox(boxID, newCode string) error {
	if newCode == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for si := range s.state.Shelves {
		if bi := s.state.Shelves[si].FindBox(boxID); bi >= 0 {
			old := s.state.Shelves[si].Boxes[bi].Code
			s.state.Shelves[si].Boxes[bi].Code = newCode
			s.addLog(entity.ActionBoxRenamed, fmt.Sprintf("Cassetta rinominata da %s a %s", old, newCode), entity.ItemTypeBox, newCode)
			s.persist()
			return nil
		}
	}
	return domain.ErrNotFound
}

// RenameSample cambia el código de una muestra. El código nuevo se guarda tal
// cual llega, sin re-derivar el sufijo de subtipo.
func (s *Store) RenameSample(sampleID, newCode string) error {
	if newCode == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for si := range s.state.Shelves {
		for bi := range s.state.Shelves[si].Boxes {
			box := &s.state.Shelves[si].Boxes[bi]
			if idx := box.FindSample(sampleID); idx >= 0 {
				old := box.Samples[idx].Code
				box.Samples[idx].Code = newCode
				s.addLog(entity.ActionSampleRenamed, fmt.Sprintf("Campione rinominato da %s a %s", old, newCode), entity.ItemTypeSample, newCode)
				s.persist()
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

// ── Movimiento ────────────────────────────────────────────────────────────────

// MoveSample extrae la muestra de su caja de origen y la añade al final de la
// caja destino, actualizando boxId/shelfId en la misma operación. Si la
// muestra o el destino no existen no se muta nada.
func (s *Store) MoveSample(sampleID, targetBoxID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	srcShelf, srcBox, srcIdx := -1, -1, -1
	for si := range s.state.Shelves {
		for bi := range s.state.Shelves[si].Boxes {
			if idx := s.state.Shelves[si].Boxes[bi].FindSample(sampleID); idx >= 0 {
				srcShelf, srcBox, srcIdx = si, bi, idx
			}
		}
	}
	dstShelf, dstBox := -1, -1
	for si := range s.state.Shelves {
		if bi := s.state.Shelves[si].FindBox(targetBoxID); bi >= 0 {
			dstShelf, dstBox = si, bi
		}
	}
	if srcIdx < 0 || dstBox < 0 {
		return domain.ErrNotFound
	}

	source := &s.state.Shelves[srcShelf].Boxes[srcBox]
	sample := source.Samples[srcIdx]
	source.Samples = append(source.Samples[:srcIdx], source.Samples[srcIdx+1:]...)

	target := &s.state.Shelves[dstShelf].Boxes[dstBox]
	sample.BoxID = target.ID
	sample.ShelfID = s.state.Shelves[dstShelf].ID
	target.Samples = append(target.Samples, sample)

	s.addLog(entity.ActionSampleMoved,
		fmt.Sprintf("Campione spostato: %s da cassetta %s a cassetta %s", sample.Code, source.Code, target.Code),
		entity.ItemTypeSample, sample.Code)
	s.persist()
	return nil
}

// MoveBox extrae la caja de su estantería de origen y la añade al final de la
// estantería destino, actualizando shelfId de la caja y de sus muestras.
func (s *Store) MoveBox(boxID, targetShelfID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	srcShelf, srcIdx := -1, -1
	for si := range s.state.Shelves {
		if bi := s.state.Shelves[si].FindBox(boxID); bi >= 0 {
			srcShelf, srcIdx = si, bi
		}
	}
	dstShelf := s.state.FindShelf(targetShelfID)
	if srcIdx < 0 || dstShelf < 0 {
		return domain.ErrNotFound
	}

	source := &s.state.Shelves[srcShelf]
	box := source.Boxes[srcIdx]
	source.Boxes = append(source.Boxes[:srcIdx], source.Boxes[srcIdx+1:]...)

	target := &s.state.Shelves[dstShelf]
	box.ShelfID = target.ID
	for i := range box.Samples {
		box.Samples[i].ShelfID = target.ID
	}
	target.Boxes = append(target.Boxes, box)

	s.addLog(entity.ActionBoxMoved,
		fmt.Sprintf("Cassetta spostata: %s da scaffale %s a scaffale %s", box.Code, source.Code, target.Code),
		entity.ItemTypeBox, box.Code)
	s.persist()
	return nil
}

// ── Operaciones masivas ───────────────────────────────────────────────────────

// BulkDispose marca como "disposed" los elementos seleccionados y cascada el
// estado a todos sus descendientes. Una entrada de registro por elemento de
// primer nivel; los ids no resueltos se saltan.
func (s *Store) BulkDispose(sel Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyBulk(sel, entity.StatusDisposed)
	s.persist()
	return nil
}

// BulkDelete marca como "deleted" los elementos seleccionados, previa
// verificación de la password de borrado. Con password incorrecta no se muta
// nada ni se registra nada.
func (s *Store) BulkDelete(sel Selection, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.auth.Verify(s.state.Settings.DeletePassword, password) {
		return domain.ErrAuthFailed
	}
	s.applyBulk(sel, entity.StatusDeleted)
	s.persist()
	return nil
}

// applyBulk aplica la transición de estado en el mismo orden que la
// aplicación original: muestras sueltas, luego cajas, luego estanterías.
func (s *Store) applyBulk(sel Selection, status string) {
	now := s.clock.Now()

	// verb/verbF: participio masculino y femenino de los mensajes italianos.
	sampleAction, boxAction, shelfAction := entity.ActionSampleDisposed, entity.ActionBoxDisposed, entity.ActionShelfDisposed
	verb, verbF := "smaltito", "smaltita"
	if status == entity.StatusDeleted {
		sampleAction, boxAction, shelfAction = entity.ActionSampleDeleted, entity.ActionBoxDeleted, entity.ActionShelfDeleted
		verb, verbF = "eliminato", "eliminata"
	}

	markSample := func(sample *entity.Sample) {
		sample.Status = status
		ts := now
		if status == entity.StatusDeleted {
			sample.DeletedAt = &ts
		} else {
			sample.DisposedAt = &ts
		}
	}

	for _, id := range sel.Samples {
		for si := range s.state.Shelves {
			for bi := range s.state.Shelves[si].Boxes {
				box := &s.state.Shelves[si].Boxes[bi]
				if idx := box.FindSample(id); idx >= 0 {
					markSample(&box.Samples[idx])
					s.addLog(sampleAction,
						fmt.Sprintf("Campione %s: %s da cassetta %s di scaffale %s", verb, box.Samples[idx].Code, box.Code, s.state.Shelves[si].Code),
						entity.ItemTypeSample, box.Samples[idx].Code)
				}
			}
		}
	}

	for _, id := range sel.Boxes {
		for si := range s.state.Shelves {
			if bi := s.state.Shelves[si].FindBox(id); bi >= 0 {
				box := &s.state.Shelves[si].Boxes[bi]
				box.Status = status
				for j := range box.Samples {
					markSample(&box.Samples[j])
				}
				s.addLog(boxAction,
					fmt.Sprintf("Cassetta %s: %s da scaffale %s", verbF, box.Code, s.state.Shelves[si].Code),
					entity.ItemTypeBox, box.Code)
			}
		}
	}

	for _, id := range sel.Shelves {
		if si := s.state.FindShelf(id); si >= 0 {
			shelf := &s.state.Shelves[si]
			shelf.Status = status
			for bi := range shelf.Boxes {
				shelf.Boxes[bi].Status = status
				for j := range shelf.Boxes[bi].Samples {
					markSample(&shelf.Boxes[bi].Samples[j])
				}
			}
			s.addLog(shelfAction, fmt.Sprintf("Scaffale %s: %s", verb, shelf.Code), entity.ItemTypeShelf, shelf.Code)
		}
	}
}

// ── Configuración ─────────────────────────────────────────────────────────────

// ChangePassword sustituye la password de borrado previa verificación de la
// actual.
func (s *Store) ChangePassword(oldPassword, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.auth.Verify(s.state.Settings.DeletePassword, oldPassword) {
		return domain.ErrAuthFailed
	}
	s.state.Settings.DeletePassword = s.auth.Hash(newPassword)
	s.addLog(entity.ActionPasswordChanged, "Password di eliminazione modificata", entity.ItemTypeSystem, "")
	s.persist()
	return nil
}

// UpdatePrinterSettings guarda la configuración de impresión.
func (s *Store) UpdatePrinterSettings(ps entity.PrinterSettings) error {
	if ps.DefaultWidth <= 0 || ps.DefaultHeight <= 0 {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Settings.PrinterSettings = ps
	s.addLog(entity.ActionSettingsChanged, "Impostazioni stampante aggiornate", entity.ItemTypeSystem, "")
	s.persist()
	return nil
}

// ── Export / Import ───────────────────────────────────────────────────────────

// Export escribe un snapshot autónomo del estado completo en path.
func (s *Store) Export(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshots.Export(s.state.Clone(), path); err != nil {
		return fmt.Errorf("exportar: %w", err)
	}
	s.addLog(entity.ActionExport, fmt.Sprintf("Dati esportati in %s", path), entity.ItemTypeSystem, "")
	s.persist()
	return nil
}

// Import reemplaza el estado completo por el del archivo indicado. El backend
// de persistencia escribe antes un backup con timestamp del snapshot vigente.
// La sesión del operador actual sobrevive al import para poder firmar la
// entrada de registro.
func (s *Store) Import(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	imported, err := s.snapshots.Import(path)
	if err != nil {
		return fmt.Errorf("importar: %w", err)
	}
	operator := s.state.CurrentOperator
	s.state = imported
	s.state.CurrentOperator = operator
	if s.state.Settings.DeletePassword.Hash == "" {
		s.state.Settings.DeletePassword = s.auth.Hash(DefaultDeletePassword)
	}
	s.addLog(entity.ActionImport, fmt.Sprintf("Dati importati da %s", path), entity.ItemTypeSystem, "")
	s.persist()
	return nil
}

// ── Lectura ───────────────────────────────────────────────────────────────────

// State devuelve un clon del estado completo para render, búsqueda e
// impresión.
func (s *Store) State() *entity.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// LastSaveError devuelve el último fallo de persistencia pendiente (nil si la
// última escritura fue bien). La durabilidad es best-effort: la aplicación
// sigue operando en memoria aunque el disco falle.
func (s *Store) LastSaveError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaveErr
}

// ── Internos ──────────────────────────────────────────────────────────────────

// addLog añade una entrada al principio del registro (más reciente primero).
// Sin operador con sesión abierta la entrada se descarta en silencio.
func (s *Store) addLog(action, details, itemType, itemCode string) {
	if s.state.CurrentOperator == "" {
		return
	}
	entry := entity.LogEntry{
		ID:        s.ids.NewID(),
		Timestamp: s.clock.Now(),
		Operator:  s.state.CurrentOperator,
		Action:    action,
		Details:   details,
		ItemType:  itemType,
		ItemCode:  itemCode,
	}
	s.state.Logs = append([]entity.LogEntry{entry}, s.state.Logs...)
}

// persist escribe el snapshot tras una mutación. Un fallo no revierte la
// memoria: se registra y queda consultable vía LastSaveError.
func (s *Store) persist() {
	if err := s.snapshots.Save(s.state.Clone()); err != nil {
		s.lastSaveErr = err
		s.log.Error().Err(err).Msg("persistir snapshot")
		return
	}
	s.lastSaveErr = nil
}
