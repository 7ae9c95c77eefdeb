package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/dto"
	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
)

// TransferHandler maneja export e import del estado completo como JSON.
type TransferHandler struct {
	store *inventory.Store
}

// NewTransferHandler construye el handler de transferencia.
func NewTransferHandler(store *inventory.Store) *TransferHandler {
	return &TransferHandler{store: store}
}

// Export vuelca el estado actual a un archivo JSON en la ruta indicada.
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "path es requerido"})
	}
	if err := h.store.Export(in.Path); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "dati esportati"})
}

// Import reemplaza el estado con el archivo indicado. Antes de sobrescribir
// se guarda un backup del snapshot actual.
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "path es requerido"})
	}
	if err := h.store.Import(in.Path); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "dati importati"})
}
