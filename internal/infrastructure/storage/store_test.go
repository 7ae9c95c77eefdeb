package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

func testState(t *testing.T) *entity.AppState {
	t.Helper()
	st := entity.NewAppState()
	st.CurrentOperator = "mario"
	now := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	st.Shelves = []entity.Shelf{{
		ID: "s1", Code: "SC-01", Prefix: "SC", Status: entity.StatusActive, CreatedAt: now,
		Boxes: []entity.Box{{
			ID: "b1", Code: "CA-01", Prefix: "CA", ShelfID: "s1", Status: entity.StatusActive, CreatedAt: now,
			Samples: []entity.Sample{{
				ID: "m1", Code: "2501234-001 TQ", Type: "TQ", ShelfID: "s1", BoxID: "b1",
				Status: entity.StatusActive, CreatedAt: now,
			}},
		}},
	}}
	st.Logs = []entity.LogEntry{{
		ID: "l1", Timestamp: now, Operator: "mario",
		Action: entity.ActionSampleArchived, Details: "x", ItemType: entity.ItemTypeSample, ItemCode: "2501234-001 TQ",
	}}
	return st
}

// snapshotStore es el contrato común de ambos backends.
type snapshotStore interface {
	Load() (*entity.AppState, error)
	Save(*entity.AppState) error
	Export(*entity.AppState, string) error
	Import(string) (*entity.AppState, error)
}

func backends(t *testing.T) map[string]snapshotStore {
	t.Helper()
	dir := t.TempDir()
	fileStore, err := NewFileStore(filepath.Join(dir, "file", "state.json"), filepath.Join(dir, "file", "backups"))
	require.NoError(t, err)
	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "sqlite", "state.db"), filepath.Join(dir, "sqlite", "backups"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })
	return map[string]snapshotStore{"file": fileStore, "sqlite": sqliteStore}
}

func TestLoad_NoSnapshotYet(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			state, err := store.Load()
			require.NoError(t, err)
			assert.Nil(t, state)
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			want := testState(t)
			require.NoError(t, store.Save(want))

			got, err := store.Load()
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, want, got)
			// time.Time va por JSON como RFC 3339 y vuelve con zona UTC.
			assert.Equal(t, want.Shelves[0].CreatedAt, got.Shelves[0].CreatedAt)
		})
	}
}

func TestImport_BacksUpCurrentSnapshot(t *testing.T) {
	for _, name := range []string{"file", "sqlite"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			backupDir := filepath.Join(dir, "backups")
			var s snapshotStore
			var err error
			if name == "file" {
				s, err = NewFileStore(filepath.Join(dir, "state.json"), backupDir)
			} else {
				s, err = NewSQLiteStore(filepath.Join(dir, "state.db"), backupDir)
			}
			require.NoError(t, err)

			// Estado vigente + archivo externo a importar.
			require.NoError(t, s.Save(testState(t)))
			incoming := entity.NewAppState()
			incoming.CurrentOperator = "lucia"
			exportPath := filepath.Join(dir, "incoming.json")
			require.NoError(t, s.Export(incoming, exportPath))

			imported, err := s.Import(exportPath)
			require.NoError(t, err)
			assert.Equal(t, "lucia", imported.CurrentOperator)

			// El snapshot previo quedó en un backup con timestamp.
			entries, err := os.ReadDir(backupDir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Regexp(t, `^backup-\d+\.json$`, entries[0].Name())

			// Y el snapshot persistido ya es el importado.
			got, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, "lucia", got.CurrentOperator)
		})
	}
}

func TestImport_WithoutPriorSnapshotSkipsBackup(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "state.json"), filepath.Join(dir, "backups"))
	require.NoError(t, err)

	exportPath := filepath.Join(dir, "incoming.json")
	require.NoError(t, s.Export(testState(t), exportPath))

	_, err = s.Import(exportPath)
	require.NoError(t, err)
	_, err = os.ReadDir(filepath.Join(dir, "backups"))
	assert.True(t, os.IsNotExist(err), "sin snapshot previo no se crea backup")
}

func TestFileStore_ExportIsInterchangeable(t *testing.T) {
	dir := t.TempDir()
	fileStore, err := NewFileStore(filepath.Join(dir, "a.json"), filepath.Join(dir, "backups"))
	require.NoError(t, err)
	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "b.db"), filepath.Join(dir, "backups"))
	require.NoError(t, err)
	defer func() { _ = sqliteStore.Close() }()

	// Un export de un backend se importa en el otro sin pérdida.
	want := testState(t)
	exportPath := filepath.Join(dir, "export.json")
	require.NoError(t, fileStore.Export(want, exportPath))

	got, err := sqliteStore.Import(exportPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
