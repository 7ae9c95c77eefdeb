package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/dto"
	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
)

// InventoryHandler maneja altas manuales, renombrados, movimientos y las
// operaciones masivas de smaltimento y eliminación.
type InventoryHandler struct {
	store *inventory.Store
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(store *inventory.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// CreateShelf alta manual de un scaffale.
func (h *InventoryHandler) CreateShelf(c *fiber.Ctx) error {
	var in dto.CreateShelfRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	shelf, err := h.store.CreateShelf(in.Code)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shelf)
}

// CreateBox alta manual de una cassetta dentro de un scaffale.
func (h *InventoryHandler) CreateBox(c *fiber.Ctx) error {
	var in dto.CreateBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ShelfCode == "" || in.BoxCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "shelfCode y boxCode son requeridos"})
	}
	box, err := h.store.CreateBox(in.ShelfCode, in.BoxCode)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(box)
}

// CreateSample alta manual de un campione dentro de una cassetta.
func (h *InventoryHandler) CreateSample(c *fiber.Ctx) error {
	var in dto.CreateSampleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ShelfCode == "" || in.BoxCode == "" || in.SampleCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "shelfCode, boxCode y sampleCode son requeridos"})
	}
	sample, err := h.store.CreateSample(in.ShelfCode, in.BoxCode, in.SampleCode)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sample)
}

// RenameShelf cambia el código de un scaffale identificado por id.
func (h *InventoryHandler) RenameShelf(c *fiber.Ctx) error {
	return h.rename(c, h.store.RenameShelf)
}

// RenameBox cambia el código de una cassetta identificada por id.
func (h *InventoryHandler) RenameBox(c *fiber.Ctx) error {
	return h.rename(c, h.store.RenameBox)
}

// RenameSample cambia el código de un campione identificado por id.
func (h *InventoryHandler) RenameSample(c *fiber.Ctx) error {
	return h.rename(c, h.store.RenameSample)
}

func (h *InventoryHandler) rename(c *fiber.Ctx, fn func(id, newCode string) error) error {
	var in dto.RenameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NewCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "newCode es requerido"})
	}
	if err := fn(c.Params("id"), in.NewCode); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "elemento rinominato"})
}

// MoveSample mueve un campione a otra cassetta.
func (h *InventoryHandler) MoveSample(c *fiber.Ctx) error {
	var in dto.MoveSampleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TargetBoxID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "targetBoxId es requerido"})
	}
	if err := h.store.MoveSample(c.Params("id"), in.TargetBoxID); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "campione spostato"})
}

// MoveBox mueve una cassetta (con sus campioni) a otro scaffale.
func (h *InventoryHandler) MoveBox(c *fiber.Ctx) error {
	var in dto.MoveBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TargetShelfID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "targetShelfId es requerido"})
	}
	if err := h.store.MoveBox(c.Params("id"), in.TargetShelfID); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cassetta spostata"})
}

// BulkDispose marca la selección como smaltita, en cascada.
func (h *InventoryHandler) BulkDispose(c *fiber.Ctx) error {
	var in dto.BulkDisposeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.store.BulkDispose(in.Selection); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "elementi smaltiti"})
}

// BulkDelete marca la selección como eliminata, en cascada. Requiere la
// password de borrado además de la sesión.
func (h *InventoryHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.store.BulkDelete(in.Selection, in.Password); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "elementi eliminati"})
}
