package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrStorageFull    = errors.New("almacenamiento local lleno")
	ErrOffline        = errors.New("servidor no disponible")
	ErrSessionExpired = errors.New("sesión expirada")
)

// ValidationError describe un campo de formulario rechazado antes de tocar el almacén.
// Siempre envuelve ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// RejectionError es un rechazo explícito del servidor (4xx): el registro no debe reintentarse.
type RejectionError struct {
	Status  int
	Code    string
	Message string
}

func (e *RejectionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("rechazado por el servidor (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("rechazado por el servidor (%d): %s", e.Status, e.Message)
}

// IsRejection indica si err es un rechazo permanente del servidor.
func IsRejection(err error) bool {
	var rej *RejectionError
	return errors.As(err, &rej)
}
