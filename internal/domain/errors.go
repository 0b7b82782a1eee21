package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrClientNotFound = errors.New("cliente no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUsernameTaken  = errors.New("el username ya está en uso")
	ErrCompanyExists  = errors.New("el nombre de empresa ya está en uso")
	ErrEmailTaken     = errors.New("el email ya está en uso")
	ErrCompanyTaken   = errors.New("la empresa ya tiene un cliente asignado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
)
