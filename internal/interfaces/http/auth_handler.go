package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/application/dto"
	"github.com/corsairpublic-create/sample-buddy-log/internal/application/inventory"
	"github.com/corsairpublic-create/sample-buddy-log/pkg/config"
	"github.com/corsairpublic-create/sample-buddy-log/pkg/jwt"
)

// AuthHandler maneja la sesión del operador.
type AuthHandler struct {
	store *inventory.Store
	jwt   config.JWTConfig
}

// NewAuthHandler construye el handler de sesión.
func NewAuthHandler(store *inventory.Store, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{store: store, jwt: jwtCfg}
}

// Login abre la sesión del operador y emite el token. No hay password de
// login: el operador solo firma el registro de auditoría.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Operator == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "operator es requerido"})
	}
	if err := h.store.Login(in.Operator); err != nil {
		return domainError(c, err)
	}
	token, err := jwt.Generate(h.jwt.Secret, in.Operator, h.jwt.Issuer, h.jwt.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Token: token, Operator: in.Operator})
}

// Logout cierra la sesión del operador en el estado de la aplicación.
// El token JWT no se revoca, simplemente expira.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout()
	return c.JSON(dto.MessageResponse{Message: "sessione chiusa"})
}
