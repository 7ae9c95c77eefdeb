package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
	"github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/pdf"
	"github.com/corsairpublic-create/sample-buddy-log/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store    *inventory.Store
	Workflow *inventory.Workflow
	PDF      *pdf.Generator
	JWT      config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	stateHandler := NewStateHandler(deps.Store)
	api.Get("/health", stateHandler.Health)

	// Auth (público)
	authHandler := NewAuthHandler(deps.Store, deps.JWT)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	protected.Post("/auth/logout", authHandler.Logout)

	// Lectura del estado
	protected.Get("/state", stateHandler.GetState)
	protected.Get("/logs", stateHandler.GetLogs)
	protected.Get("/search", stateHandler.Search)

	// Ciclo de escaneo
	scanHandler := NewScanHandler(deps.Workflow)
	protected.Post("/scan", scanHandler.Scan)
	protected.Post("/scan/reset", scanHandler.Reset)
	protected.Get("/scan/status", scanHandler.Status)

	// Inventario
	invHandler := NewInventoryHandler(deps.Store)
	protected.Post("/shelves", invHandler.CreateShelf)
	protected.Put("/shelves/:id/rename", invHandler.RenameShelf)
	protected.Post("/boxes", invHandler.CreateBox)
	protected.Put("/boxes/:id/rename", invHandler.RenameBox)
	protected.Put("/boxes/:id/move", invHandler.MoveBox)
	protected.Post("/samples", invHandler.CreateSample)
	protected.Put("/samples/:id/rename", invHandler.RenameSample)
	protected.Put("/samples/:id/move", invHandler.MoveSample)
	protected.Post("/bulk/dispose", invHandler.BulkDispose)
	protected.Post("/bulk/delete", invHandler.BulkDelete)

	// Ajustes
	settingsHandler := NewSettingsHandler(deps.Store)
	protected.Put("/settings/printer", settingsHandler.UpdatePrinter)
	protected.Put("/settings/password", settingsHandler.ChangePassword)

	// Export / import
	transferHandler := NewTransferHandler(deps.Store)
	protected.Post("/export", transferHandler.Export)
	protected.Post("/import", transferHandler.Import)

	// Impresión
	printHandler := NewPrintHandler(deps.Store, deps.PDF)
	protected.Post("/print/labels", printHandler.Labels)
	protected.Get("/print/logs", printHandler.LogReport)
}
