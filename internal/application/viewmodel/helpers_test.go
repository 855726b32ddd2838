package viewmodel_test

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/memory"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/remote"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/sqlite"
	"github.com/jhoicas/wms-sync-agent/pkg/config"
)

// countTrigger cuenta las solicitudes de ciclo de envío.
type countTrigger struct{ n atomic.Int32 }

func (c *countTrigger) Trigger()   { c.n.Add(1) }
func (c *countTrigger) calls() int { return int(c.n.Load()) }

// env dispositivo completo: SQLite en disco temporal y servidor de ejemplo en memoria.
type env struct {
	db       *sqlx.DB
	store    *sqlite.PendingStore
	ledger   *sqlite.DeliveryLedger
	sessions *sqlite.SessionStore
	server   *memory.Server
	sub      *delivery.Submitter
	trigger  *countTrigger
	auth     *viewmodel.AuthViewModel
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := sqlite.Open(context.Background(), config.StoreConfig{Path: filepath.Join(t.TempDir(), "wms.db"), BusyTimeoutMS: 1000})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := sqlite.NewPendingStore(db)
	ledger := sqlite.NewDeliveryLedger(db, store)
	sessions := sqlite.NewSessionStore(db)
	srv, err := memory.NewDemoServer("secreto-vm", remote.SessionTokens{Sessions: sessions})
	require.NoError(t, err)

	auth := viewmodel.NewAuthViewModel(context.Background(), srv, sessions, bcrypt.MinCost, zerolog.Nop())
	t.Cleanup(auth.Close)
	return &env{
		db:       db,
		store:    store,
		ledger:   ledger,
		sessions: sessions,
		server:   srv,
		sub:      delivery.NewSubmitter(store, ledger, srv, delivery.DefaultPolicy(), zerolog.Nop()),
		trigger:  &countTrigger{},
		auth:     auth,
	}
}

func (e *env) login(t *testing.T, email string) *entity.Session {
	t.Helper()
	st := e.auth.Login(context.Background(), email, memory.DemoPassword)
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase, st.Message)
	return st.Data
}

func (e *env) drain(t *testing.T) delivery.Report {
	t.Helper()
	report, err := e.sub.RunOnce(context.Background())
	require.NoError(t, err)
	return report
}

func (e *env) pending(t *testing.T, kind entity.PendingKind) int {
	t.Helper()
	counts, err := e.store.CountPending(context.Background())
	require.NoError(t, err)
	return counts[kind]
}

func ptr[T any](v T) *T { return &v }
