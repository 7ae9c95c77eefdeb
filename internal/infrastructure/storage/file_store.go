// Package storage implementa los backends locales del snapshot de estado:
// archivo JSON (equivalente al electron-store original) y tabla clave-valor
// SQLite embebida. Ambos escriben el AppState completo en cada Save y hacen
// backup con timestamp antes de cada Import.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

// FileStore persiste el snapshot como un único archivo JSON. Las fechas van
// en ISO-8601 (RFC 3339), el formato nativo de time.Time en JSON.
type FileStore struct {
	path      string
	backupDir string
}

// NewFileStore construye el store; crea el directorio del snapshot si no
// existe.
func NewFileStore(path, backupDir string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{path: path, backupDir: backupDir}, nil
}

// Load lee el snapshot; (nil, nil) si todavía no existe.
func (s *FileStore) Load() (*entity.AppState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	return decodeState(data)
}

// Save escribe el snapshot completo de forma atómica (tmp + rename).
func (s *FileStore) Save(state *entity.AppState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("escribir snapshot temporal: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("renombrar snapshot: %w", err)
	}
	return nil
}

// Export escribe un snapshot autónomo en path, con el mismo formato que el
// snapshot persistido.
func (s *FileStore) Export(state *entity.AppState, path string) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("crear directorio de export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("escribir export: %w", err)
	}
	return nil
}

// Import hace backup del snapshot vigente, lee el archivo indicado y lo
// convierte en el nuevo snapshot persistido.
func (s *FileStore) Import(path string) (*entity.AppState, error) {
	current, err := s.Load()
	if err != nil {
		return nil, err
	}
	if current != nil {
		if err := writeBackup(s.backupDir, current); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer archivo a importar: %w", err)
	}
	imported, err := decodeState(data)
	if err != nil {
		return nil, err
	}
	if err := s.Save(imported); err != nil {
		return nil, err
	}
	return imported, nil
}

// ── Comunes a ambos backends ──────────────────────────────────────────────────

func encodeState(state *entity.AppState) ([]byte, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializar snapshot: %w", err)
	}
	return data, nil
}

func decodeState(data []byte) (*entity.AppState, error) {
	var state entity.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("deserializar snapshot: %w", err)
	}
	return &state, nil
}

// writeBackup guarda el snapshot vigente como backup-<unix-ms>.json, igual
// que hacía la aplicación de escritorio antes de cada import.
func writeBackup(dir string, state *entity.AppState) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("crear directorio de backups: %w", err)
	}
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("backup-%d.json", time.Now().UnixMilli())
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o640); err != nil {
		return fmt.Errorf("escribir backup: %w", err)
	}
	return nil
}
