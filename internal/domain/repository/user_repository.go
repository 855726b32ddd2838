package repository

import (
	"context"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// NewUser datos para crear un usuario en el servidor (password en texto plano, viaja por TLS).
type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserRepository consulta y alta de usuarios en el servidor.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, in NewUser) (*entity.User, error)
}

// AuthGateway autentica contra el servidor.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
}

// CachedCredentials credenciales del último login exitoso, para abrir sesión sin conexión.
type CachedCredentials struct {
	Session      entity.Session
	PasswordHash string
}

// SessionStore persiste la sesión activa en el dispositivo.
type SessionStore interface {
	Save(ctx context.Context, s *entity.Session, passwordHash string) error
	Current(ctx context.Context) (*entity.Session, error)
	Credentials(ctx context.Context, email string) (*CachedCredentials, error)
	Activate(ctx context.Context, s *entity.Session) error
	Clear(ctx context.Context) error
}
