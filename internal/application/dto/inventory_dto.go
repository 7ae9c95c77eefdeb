package dto

import "github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"

// LoginRequest abre la sesión del operador (sin password: el operador solo
// firma el registro de auditoría).
type LoginRequest struct {
	Operator string `json:"operator"`
}

// LoginResponse devuelve el token de sesión.
type LoginResponse struct {
	Token    string `json:"token"`
	Operator string `json:"operator"`
}

// ScanRequest un código leído por el escáner o tecleado.
type ScanRequest struct {
	Code string `json:"code"`
}

// ScanResponse resultado del escaneo más el estado del cursor de archivado.
type ScanResponse struct {
	Result   *inventory.ScanResult   `json:"result"`
	Workflow inventory.WorkflowState `json:"workflow"`
	Message  string                  `json:"message"`
}

// CreateShelfRequest alta manual de estantería.
type CreateShelfRequest struct {
	Code string `json:"code"`
}

// CreateBoxRequest alta manual de caja.
type CreateBoxRequest struct {
	ShelfCode string `json:"shelfCode"`
	BoxCode   string `json:"boxCode"`
}

// CreateSampleRequest alta manual de muestra.
type CreateSampleRequest struct {
	ShelfCode  string `json:"shelfCode"`
	BoxCode    string `json:"boxCode"`
	SampleCode string `json:"sampleCode"`
}

// RenameRequest cambio de código in situ.
type RenameRequest struct {
	NewCode string `json:"newCode"`
}

// MoveSampleRequest mueve una muestra a otra caja.
type MoveSampleRequest struct {
	TargetBoxID string `json:"targetBoxId"`
}

// MoveBoxRequest mueve una caja a otra estantería.
type MoveBoxRequest struct {
	TargetShelfID string `json:"targetShelfId"`
}

// BulkDisposeRequest selección de ids a marcar como smaltiti.
type BulkDisposeRequest struct {
	inventory.Selection
}

// BulkDeleteRequest selección de ids a eliminar, con la password de borrado.
type BulkDeleteRequest struct {
	inventory.Selection
	Password string `json:"password"`
}

// ChangePasswordRequest cambio de la password de borrado.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// PrinterSettingsRequest ajustes de impresión (dimensiones en pulgadas).
type PrinterSettingsRequest struct {
	DefaultWidth    float64 `json:"defaultWidth"`
	DefaultHeight   float64 `json:"defaultHeight"`
	SelectedPrinter string  `json:"selectedPrinter"`
}

// TransferRequest ruta del archivo de export o import.
type TransferRequest struct {
	Path string `json:"path"`
}

// LabelRef un elemento a incluir en la hoja de etiquetas.
type LabelRef struct {
	Code string `json:"code"`
	Kind string `json:"kind"` // shelf | box | sample
}

// PrintLabelsRequest etiquetas a generar.
type PrintLabelsRequest struct {
	Items []LabelRef `json:"items"`
}
