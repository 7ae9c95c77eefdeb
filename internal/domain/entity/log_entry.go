package entity

import "time"

// Tipos de elemento referenciados por una entrada del registro.
const (
	ItemTypeShelf  = "shelf"
	ItemTypeBox    = "box"
	ItemTypeSample = "sample"
	// ItemTypeSystem marca las entradas sin elemento asociado (sesión,
	// password, ajustes, export/import).
	ItemTypeSystem = "system"
)

// Acciones del registro de auditoría. Los nombres están en italiano porque son
// los que el laboratorio ve en pantalla y en los informes impresos.
const (
	ActionShelfCreated       = "SCAFFALE_CREATO"
	ActionShelfScanned       = "SCAFFALE_SCANSIONATO"
	ActionShelfCreatedManual = "SCAFFALE_CREATO_MANUALMENTE"
	ActionShelfRenamed       = "SCAFFALE_RINOMINATO"
	ActionShelfDisposed      = "SCAFFALE_SMALTITO"
	ActionShelfDeleted       = "SCAFFALE_ELIMINATO"

	ActionBoxCreated       = "CASSETTA_CREATA"
	ActionBoxScanned       = "CASSETTA_SCANSIONATA"
	ActionBoxCreatedManual = "CASSETTA_CREATA_MANUALMENTE"
	ActionBoxRenamed       = "CASSETTA_RINOMINATA"
	ActionBoxMoved         = "CASSETTA_SPOSTATA"
	ActionBoxDisposed      = "CASSETTA_SMALTITA"
	ActionBoxDeleted       = "CASSETTA_ELIMINATA"

	ActionSampleArchived      = "CAMPIONE_ARCHIVIATO"
	ActionSampleCreatedManual = "CAMPIONE_CREATO_MANUALMENTE"
	ActionSampleRenamed       = "CAMPIONE_RINOMINATO"
	ActionSampleMoved         = "CAMPIONE_SPOSTATO"
	ActionSampleDisposed      = "CAMPIONE_SMALTITO"
	ActionSampleDeleted       = "CAMPIONE_ELIMINATO"

	ActionLogin           = "LOGIN"
	ActionLogout          = "LOGOUT"
	ActionPasswordChanged = "PASSWORD_MODIFICATA"
	ActionSettingsChanged = "IMPOSTAZIONI_MODIFICATE"
	ActionExport          = "ESPORTAZIONE"
	ActionImport          = "IMPORTAZIONE"
)

// LogEntry es una entrada inmutable del registro de auditoría. Se añade al
// principio de la secuencia (más reciente primero) y nunca se modifica ni se
// elimina.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operator  string    `json:"operator"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	ItemType  string    `json:"itemType"` // shelf | box | sample | system
	ItemCode  string    `json:"itemCode"`
}
