package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrTenantNotFound = errors.New("tenant no encontrado")
	ErrTenantDisabled = errors.New("tenant deshabilitado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrEmailExists    = errors.New("el email ya está registrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrOverlap        = errors.New("la cita se solapa con otra existente")
)
