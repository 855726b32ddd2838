package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
)

// writeError traduce un error de dominio a status HTTP y dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	var rej *domain.RejectionError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message, Field: verr.Field})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrSessionExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, inicia sesión de nuevo"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas o sesión no válida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.As(err, &rej):
		code := rej.Code
		if code == "" {
			code = "REJECTED"
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: code, Message: rej.Message})
	case errors.Is(err, domain.ErrOffline):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "OFFLINE", Message: "sin conexión con el servidor"})
	case errors.Is(err, domain.ErrStorageFull):
		return c.Status(fiber.StatusInsufficientStorage).JSON(dto.ErrorResponse{Code: "STORAGE_FULL", Message: "no hay espacio en el dispositivo"})
	case errors.Is(err, viewmodel.ErrClosed):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SHUTTING_DOWN", Message: "el agente se está deteniendo"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido", Field: "id"})
}

// respond escribe el resultado de una operación de view-model.
func respond[T any](c *fiber.Ctx, st viewmodel.State[T], status int, render func(T) any) error {
	if st.Phase == viewmodel.PhaseError {
		return writeError(c, st.Err)
	}
	return c.Status(status).JSON(render(st.Data))
}

// queued respuesta 202 para escrituras que quedaron en la cola local.
func queued(kind string) func(viewmodel.Outcome) any {
	return func(o viewmodel.Outcome) any {
		return dto.QueuedResponse{Kind: kind, LocalID: o.LocalID, ClientRef: o.ClientRef, Status: "PENDIENTE_ENVIO"}
	}
}

func message(o viewmodel.Outcome) any {
	return fiber.Map{"message": o.Message}
}

func listing[T, R any](l viewmodel.Listing[T], conv func(T) R) fiber.Map {
	items := make([]R, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, conv(it))
	}
	return fiber.Map{"total": len(items), "items": items, "sinConexion": l.Offline}
}
