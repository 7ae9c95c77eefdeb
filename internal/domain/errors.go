package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; los mensajes visibles al operador viven en la
// capa de interfaz.
var (
	ErrMissingParent   = errors.New("contexto de estantería/caja ausente")
	ErrAlreadyExists   = errors.New("elemento ya existente")
	ErrDuplicateSample = errors.New("muestra duplicada en la caja")
	ErrNotFound        = errors.New("elemento no encontrado")
	ErrAuthFailed      = errors.New("password incorrecta")
	ErrInvalidInput    = errors.New("entrada inválida")
)
