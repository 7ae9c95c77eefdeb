package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
	infraauth "github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/auth"
	infrapdf "github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/pdf"
	"github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/storage"
	"github.com/corsairpublic-create/sample-buddy-log/internal/infrastructure/system"
	httpRouter "github.com/corsairpublic-create/sample-buddy-log/internal/interfaces/http"
	"github.com/corsairpublic-create/sample-buddy-log/pkg/config"
	"github.com/corsairpublic-create/sample-buddy-log/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	var snapshots inventory.SnapshotStore
	switch cfg.Storage.Backend {
	case "sqlite":
		sqliteStore, err := storage.NewSQLiteStore(cfg.Storage.Path, cfg.Storage.BackupDir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir snapshot store sqlite")
		}
		defer sqliteStore.Close()
		snapshots = sqliteStore
	default:
		fileStore, err := storage.NewFileStore(cfg.Storage.Path, cfg.Storage.BackupDir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir snapshot store de archivo")
		}
		snapshots = fileStore
	}

	store, err := inventory.New(
		snapshots,
		infraauth.New(),
		system.Clock{},
		system.UUIDGenerator{},
		log,
		entity.PrinterSettings{
			DefaultWidth:  cfg.Printer.DefaultWidth,
			DefaultHeight: cfg.Printer.DefaultHeight,
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar inventario")
	}
	workflow := inventory.NewWorkflow(store)
	pdfGenerator := infrapdf.NewGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:    store,
		Workflow: workflow,
		PDF:      pdfGenerator,
		JWT:      cfg.JWT,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
