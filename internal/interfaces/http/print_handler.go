package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/dto"
	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
	"github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/pdf"
)

// PrintHandler genera los PDF de etiquetas y del registro de auditoría.
type PrintHandler struct {
	store *inventory.Store
	gen   *pdf.Generator
}

// NewPrintHandler construye el handler de impresión.
func NewPrintHandler(store *inventory.Store, gen *pdf.Generator) *PrintHandler {
	return &PrintHandler{store: store, gen: gen}
}

// Labels genera la hoja de etiquetas code128 con las dimensiones guardadas.
func (h *PrintHandler) Labels(c *fiber.Ctx) error {
	var in dto.PrintLabelsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items es requerido"})
	}
	items := make([]pdf.LabelItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, pdf.LabelItem{Code: it.Code, Kind: it.Kind})
	}
	doc, err := h.gen.LabelSheet(items, h.store.State().Settings.PrinterSettings)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="etichette.pdf"`)
	return c.Send(doc)
}

// LogReport genera el PDF del registro de operaciones completo.
func (h *PrintHandler) LogReport(c *fiber.Ctx) error {
	doc, err := h.gen.LogReport(h.store.State())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="registro.pdf"`)
	return c.Send(doc)
}
