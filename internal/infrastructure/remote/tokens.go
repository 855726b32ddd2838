package remote

import (
	"context"
	"time"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// SessionTokens toma el token de la sesión activa guardada en el dispositivo.
type SessionTokens struct {
	Sessions repository.SessionStore
	Now      func() time.Time
}

// AccessToken devuelve ErrUnauthorized sin sesión y ErrSessionExpired si el token venció.
func (s SessionTokens) AccessToken(ctx context.Context) (string, error) {
	sess, err := s.Sessions.Current(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil || sess.Token == "" {
		return "", domain.ErrUnauthorized
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if sess.Expired(now) {
		return "", domain.ErrSessionExpired
	}
	return sess.Token, nil
}
