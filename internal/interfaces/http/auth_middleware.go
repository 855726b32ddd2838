package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// Locals keys para la sesión activa en Fiber.
const (
	LocalUserID  = "user_id"
	LocalRole    = "role"
	LocalOffline = "offline"
)

// SessionSource sesión activa del dispositivo (la implementa viewmodel.AuthViewModel).
type SessionSource interface {
	Session(ctx context.Context) (*entity.Session, error)
}

// AuthMiddleware exige una sesión activa en el dispositivo y carga usuario y rol en c.Locals.
// La API local no recibe tokens: el token del servidor nunca sale del agente.
func AuthMiddleware(sessions SessionSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Session(c.UserContext())
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, inicia sesión de nuevo"})
			}
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "no hay una sesión activa"})
			}
			return writeError(c, err)
		}
		if sess.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la sesión no tiene rol"})
		}
		c.Locals(LocalUserID, sess.UserID)
		c.Locals(LocalRole, sess.Role)
		c.Locals(LocalOffline, sess.Offline)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la sesión no tiene rol"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol " + role + " no tiene acceso a este recurso"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el ID del usuario de la sesión (después de AuthMiddleware).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}

// IsOffline indica si la sesión se abrió sin conexión.
func IsOffline(c *fiber.Ctx) bool {
	offline, _ := c.Locals(LocalOffline).(bool)
	return offline
}
