package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/dto"
	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

// SettingsHandler maneja los ajustes persistidos: impresora y password de
// borrado.
type SettingsHandler struct {
	store *inventory.Store
}

// NewSettingsHandler construye el handler de ajustes.
func NewSettingsHandler(store *inventory.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// UpdatePrinter guarda las dimensiones de etiqueta y la impresora elegida.
func (h *SettingsHandler) UpdatePrinter(c *fiber.Ctx) error {
	var in dto.PrinterSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DefaultWidth <= 0 || in.DefaultHeight <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dimensioni etichetta non valide"})
	}
	err := h.store.UpdatePrinterSettings(entity.PrinterSettings{
		DefaultWidth:    in.DefaultWidth,
		DefaultHeight:   in.DefaultHeight,
		SelectedPrinter: in.SelectedPrinter,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "impostazioni stampante salvate"})
}

// ChangePassword cambia la password de borrado previa verificación de la
// actual.
func (h *SettingsHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "newPassword es requerido"})
	}
	if err := h.store.ChangePassword(in.OldPassword, in.NewPassword); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "password aggiornata"})
}
