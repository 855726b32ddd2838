package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "ADMINISTRADOR"
	RoleSupervisor = "SUPERVISOR"
	RoleOperator   = "OPERADOR"
)

// ValidRole indica si role es uno de los roles del sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleOperator:
		return true
	}
	return false
}

// User usuario del WMS.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	Active    bool
	CreatedAt time.Time
}

// Session sesión activa en el dispositivo.
type Session struct {
	Token     string
	TokenType string
	UserID    int64
	Name      string
	Email     string
	Role      string
	ExpiresAt time.Time
	Offline   bool // abierta con credenciales en caché, sin servidor
}

// Expired indica si la sesión venció en now. Sin fecha de expiración no vence.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// CanApprove indica si el rol puede decidir solicitudes de movimiento.
func (s *Session) CanApprove() bool {
	return s.Role == RoleAdmin || s.Role == RoleSupervisor
}
