package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/dto"
	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/barcode"
)

// ScanHandler maneja el ciclo de escaneo scaffale -> cassetta -> campioni.
type ScanHandler struct {
	workflow *inventory.Workflow
}

// NewScanHandler construye el handler de escaneo.
func NewScanHandler(workflow *inventory.Workflow) *ScanHandler {
	return &ScanHandler{workflow: workflow}
}

// Scan procesa un código y avanza el cursor de archivado.
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	res, err := h.workflow.Scan(in.Code)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ScanResponse{
		Result:   res,
		Workflow: h.workflow.State(),
		Message:  scanMessage(res),
	})
}

// Reset reinicia el ciclo de escaneo sin tocar el inventario.
func (h *ScanHandler) Reset(c *fiber.Ctx) error {
	h.workflow.Reset()
	return c.JSON(dto.MessageResponse{Message: "ciclo di scansione azzerato"})
}

// Status devuelve el cursor actual del ciclo.
func (h *ScanHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.workflow.State())
}

// scanMessage arma el mensaje en italiano que la UI muestra tras cada lectura.
func scanMessage(res *inventory.ScanResult) string {
	switch res.Kind {
	case string(barcode.KindShelf):
		if res.Created {
			return fmt.Sprintf("Nuovo scaffale creato: %s", res.Code)
		}
		return fmt.Sprintf("Scaffale selezionato: %s", res.Code)
	case string(barcode.KindBox):
		if res.Created {
			return fmt.Sprintf("Nuova cassetta creata: %s", res.Code)
		}
		return fmt.Sprintf("Cassetta selezionata: %s", res.Code)
	default:
		return fmt.Sprintf("Campione archiviato: %s", res.Code)
	}
}
