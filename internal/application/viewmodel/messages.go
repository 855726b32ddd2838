package viewmodel

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
)

// userMessage traduce un error a un mensaje para la pantalla.
func userMessage(err error) string {
	var verr *domain.ValidationError
	var rej *domain.RejectionError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return fmt.Sprintf("%s %s", verr.Field, verr.Message)
	case errors.Is(err, domain.ErrStorageFull):
		return "No hay espacio en el dispositivo para guardar el registro"
	case errors.Is(err, domain.ErrOffline):
		return "Sin conexión con el servidor"
	case errors.Is(err, domain.ErrSessionExpired):
		return "La sesión expiró, inicia sesión de nuevo"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Credenciales inválidas o sesión no válida"
	case errors.Is(err, domain.ErrForbidden):
		return "No tienes permisos para esta acción"
	case errors.As(err, &rej):
		return rej.Message
	case errors.Is(err, domain.ErrConflict):
		return "La operación ya no es válida para el estado actual"
	case errors.Is(err, domain.ErrNotFound):
		return "No se encontró el registro"
	case errors.Is(err, context.Canceled):
		return "Operación cancelada"
	case errors.Is(err, ErrClosed):
		return "La pantalla ya fue cerrada"
	}
	return err.Error()
}
