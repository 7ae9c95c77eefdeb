package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/dto"
	"github.com/corsairpublic-create/sample-buddy-log/internal/domain"
)

// domainError traduce los errores tipados del dominio a respuestas HTTP con
// el mensaje en italiano que la interfaz muestra al operador.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingParent):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MISSING_PARENT", Message: "Devi prima scansionare scaffale e cassetta"})
	case errors.Is(err, domain.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_EXISTS", Message: "Elemento già esistente"})
	case errors.Is(err, domain.ErrDuplicateSample):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SAMPLE", Message: "Campione già esistente in questa cassetta"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Elemento non trovato"})
	case errors.Is(err, domain.ErrAuthFailed):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "AUTH_FAILED", Message: "Password errata"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Dati non validi"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
