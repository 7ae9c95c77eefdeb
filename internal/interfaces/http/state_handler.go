package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
)

// StateHandler expone el estado de la aplicación en modo lectura.
type StateHandler struct {
	store *inventory.Store
}

// NewStateHandler construye el handler de estado.
func NewStateHandler(store *inventory.Store) *StateHandler {
	return &StateHandler{store: store}
}

// GetState devuelve el árbol completo scaffali/cassette/campioni más ajustes.
func (h *StateHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.store.State())
}

// GetLogs devuelve el registro de auditoría, más reciente primero.
func (h *StateHandler) GetLogs(c *fiber.Ctx) error {
	return c.JSON(h.store.State().Logs)
}

// Search busca por texto libre con filtros opcionales de tipo y stato.
func (h *StateHandler) Search(c *fiber.Ctx) error {
	q := inventory.SearchQuery{
		Text:   c.Query("q"),
		Kind:   c.Query("kind"),
		Status: c.Query("status"),
	}
	return c.JSON(h.store.Search(q))
}

// Health responde el estado del proceso. Si la última persistencia falló lo
// señala sin tumbar el servicio: la memoria sigue siendo la fuente de verdad.
func (h *StateHandler) Health(c *fiber.Ctx) error {
	if err := h.store.LastSaveError(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
