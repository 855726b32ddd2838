package remote_test

import (
	"context"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

type memSessions struct{ cur *entity.Session }

func (m *memSessions) Save(_ context.Context, s *entity.Session, _ string) error { m.cur = s; return nil }
func (m *memSessions) Current(context.Context) (*entity.Session, error)         { return m.cur, nil }
func (m *memSessions) Credentials(context.Context, string) (*repository.CachedCredentials, error) {
	return nil, nil
}
func (m *memSessions) Activate(_ context.Context, s *entity.Session) error { m.cur = s; return nil }
func (m *memSessions) Clear(context.Context) error                         { m.cur = nil; return nil }
