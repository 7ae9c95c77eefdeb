package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver sqlite en Go puro, sin cgo

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

const stateBucket = "app"

// SQLiteStore persiste el snapshot como blob JSON en una tabla clave-valor de
// una base SQLite embebida. Mismo contrato que FileStore, distinto soporte.
type SQLiteStore struct {
	db        *sql.DB
	backupDir string
}

// NewSQLiteStore abre (o crea) la base y su tabla de estado.
func NewSQLiteStore(path, backupDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("crear tabla de estado: %w", err)
	}
	return &SQLiteStore{db: db, backupDir: backupDir}, nil
}

// Close cierra la base.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Load lee el snapshot; (nil, nil) si el bucket todavía no existe.
func (s *SQLiteStore) Load() (*entity.AppState, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, stateBucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	return decodeState(payload)
}

// Save reemplaza el snapshot completo.
func (s *SQLiteStore) Save(state *entity.AppState) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`INSERT INTO state (bucket, payload) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, stateBucket, payload); err != nil {
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	return nil
}

// Export escribe un snapshot JSON autónomo, intercambiable con el de
// FileStore.
func (s *SQLiteStore) Export(state *entity.AppState, path string) error {
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

// Import hace backup del snapshot vigente y lo reemplaza por el del archivo
// JSON indicado.
func (s *SQLiteStore) Import(path string) (*entity.AppState, error) {
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
