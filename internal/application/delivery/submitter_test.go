package delivery_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/sqlite"
	"github.com/jhoicas/wms-sync-agent/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gateway de prueba: decide el resultado por SKU / título y registra el orden.
// ──────────────────────────────────────────────────────────────────────────────

type fakeGateway struct {
	mu        sync.Mutex
	outcome   map[string]error // clave: SKU o título; ausente = aceptado
	delivered []string
	nextID    int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{outcome: map[string]error{}}
}

func (g *fakeGateway) set(key string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outcome[key] = err
}

func keyOf(rec entity.PendingRecord) string {
	switch r := rec.(type) {
	case *entity.PendingMovementRequest:
		return r.SKU
	case *entity.PendingInventoryCount:
		return r.SKU
	case *entity.PendingMessage:
		return r.Title
	case *entity.PendingLocationAssignment:
		return r.SKU
	}
	return ""
}

func (g *fakeGateway) Deliver(_ context.Context, rec entity.PendingRecord) (*delivery.Receipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := keyOf(rec)
	g.delivered = append(g.delivered, key)
	if err := g.outcome[key]; err != nil {
		return nil, err
	}
	g.nextID++
	return &delivery.Receipt{ServerID: g.nextID}, nil
}

func (g *fakeGateway) calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.delivered...)
}

type fixture struct {
	store  *sqlite.PendingStore
	ledger *sqlite.DeliveryLedger
	gw     *fakeGateway
	sub    *delivery.Submitter
}

func newFixture(t *testing.T, policy delivery.Policy) *fixture {
	t.Helper()
	db, err := sqlite.Open(context.Background(), config.StoreConfig{Path: filepath.Join(t.TempDir(), "wms.db"), BusyTimeoutMS: 1000})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := sqlite.NewPendingStore(db)
	ledger := sqlite.NewDeliveryLedger(db, store)
	gw := newFakeGateway()
	return &fixture{
		store:  store,
		ledger: ledger,
		gw:     gw,
		sub:    delivery.NewSubmitter(store, ledger, gw, policy, zerolog.Nop()),
	}
}

func (f *fixture) count(t *testing.T, sku string) int64 {
	t.Helper()
	id, err := f.store.Enqueue(context.Background(), &entity.PendingInventoryCount{SKU: sku, LocationID: 1, PhysicalQuantity: 3})
	require.NoError(t, err)
	return id
}

func (f *fixture) pending(t *testing.T, kind entity.PendingKind) []entity.PendingRecord {
	t.Helper()
	list, err := f.store.ListPending(context.Background(), kind)
	require.NoError(t, err)
	return list
}

func kindReport(r delivery.Report, kind entity.PendingKind) delivery.KindReport {
	for _, k := range r.Kinds {
		if k.Kind == kind {
			return k
		}
	}
	return delivery.KindReport{}
}

var errServer = errors.New("503 Service Unavailable")

// ──────────────────────────────────────────────────────────────────────────────
// RunOnce
// ──────────────────────────────────────────────────────────────────────────────

func TestRunOnce_AceptadosSeRetiranEnOrden(t *testing.T) {
	f := newFixture(t, delivery.DefaultPolicy())
	f.count(t, "A")
	f.count(t, "B")
	f.count(t, "C")

	report, err := f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Accepted())
	assert.Equal(t, []string{"A", "B", "C"}, f.gw.calls(), "FIFO dentro del tipo")
	assert.Empty(t, f.pending(t, entity.PendingKindInventoryCount))
}

func TestRunOnce_FallaTransitoriaDejaEnColaConBackoff(t *testing.T) {
	f := newFixture(t, delivery.Policy{MaxAttempts: 5, BackoffBase: time.Minute, BackoffMax: time.Hour})
	a := f.count(t, "A")
	f.count(t, "B")
	f.gw.set("A", errServer)

	report, err := f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	kr := kindReport(report, entity.PendingKindInventoryCount)
	assert.Equal(t, 1, kr.Deferred)
	assert.Equal(t, 1, kr.Accepted, "B se intenta aunque A haya fallado")
	assert.Equal(t, []string{"A", "B"}, f.gw.calls())
	require.Len(t, f.pending(t, entity.PendingKindInventoryCount), 1, "A sigue en cola")

	att, err := f.ledger.Attempt(context.Background(), entity.PendingKindInventoryCount, a)
	require.NoError(t, err)
	require.NotNil(t, att)
	assert.Equal(t, 1, att.Attempts)
	assert.Contains(t, att.LastError, "503")
	assert.True(t, att.NextAttemptAt.After(time.Now().Add(50*time.Second)))

	// Segundo ciclo antes del backoff: no hay intento nuevo.
	f.gw.set("A", nil)
	report, err = f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, kindReport(report, entity.PendingKindInventoryCount).Waiting)
	assert.Equal(t, []string{"A", "B"}, f.gw.calls(), "el backoff no ha vencido")

	// "Sincronizar ahora" reinicia la bitácora.
	_, err = f.ledger.ResetAttempts(context.Background())
	require.NoError(t, err)
	report, err = f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Accepted())
	assert.Empty(t, f.pending(t, entity.PendingKindInventoryCount))
}

func TestRunOnce_CadaRegistroRecibeUnIntentoPorCiclo(t *testing.T) {
	f := newFixture(t, delivery.Policy{MaxAttempts: 5, BackoffBase: time.Millisecond, BackoffMax: time.Millisecond})
	for _, title := range []string{"A", "B", "C"} {
		_, err := f.store.Enqueue(context.Background(), &entity.PendingMessage{Title: title, Body: "turno"})
		require.NoError(t, err)
	}
	f.gw.set("A", errServer)

	report, err := f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	kr := kindReport(report, entity.PendingKindMessage)
	assert.Equal(t, 1, kr.Deferred)
	assert.Equal(t, 2, kr.Accepted)
	assert.Zero(t, kr.Waiting)
	assert.Equal(t, []string{"A", "B", "C"}, f.gw.calls(), "FIFO, un intento por registro")

	time.Sleep(5 * time.Millisecond)
	_, err = f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "A"}, f.gw.calls())
	assert.Len(t, f.pending(t, entity.PendingKindMessage), 1)
}

func TestRunOnce_RechazoSaleDeLaColaYSeNotifica(t *testing.T) {
	f := newFixture(t, delivery.DefaultPolicy())
	f.count(t, "A")
	f.count(t, "B")
	f.gw.set("A", &domain.RejectionError{Status: 422, Message: "SKU desconocido"})

	var notified []*entity.RejectedRecord
	f.sub.OnRejected(func(rr *entity.RejectedRecord) { notified = append(notified, rr) })

	report, err := f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Accepted())
	require.Len(t, report.Rejections, 1)
	assert.Equal(t, "SKU desconocido", report.Rejections[0].Message)
	require.Len(t, notified, 1)
	assert.Empty(t, f.pending(t, entity.PendingKindInventoryCount))

	rejected, err := f.ledger.ListRejected(context.Background())
	require.NoError(t, err)
	assert.Len(t, rejected, 1)
}

func TestRunOnce_SinConexionNoConsumeIntentos(t *testing.T) {
	f := newFixture(t, delivery.DefaultPolicy())
	a := f.count(t, "A")
	f.count(t, "B")
	f.gw.set("A", domain.ErrOffline)

	report, err := f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Offline())
	assert.Equal(t, []string{"A"}, f.gw.calls(), "sin conexión no se insiste con el resto")

	att, err := f.ledger.Attempt(context.Background(), entity.PendingKindInventoryCount, a)
	require.NoError(t, err)
	assert.Nil(t, att)
	assert.Len(t, f.pending(t, entity.PendingKindInventoryCount), 2)
}

func TestRunOnce_TiposIndependientes(t *testing.T) {
	f := newFixture(t, delivery.DefaultPolicy())
	f.count(t, "A")
	_, err := f.store.Enqueue(context.Background(), &entity.PendingMessage{Title: "Aviso", Body: "Cierre a las 6"})
	require.NoError(t, err)
	f.gw.set("A", errServer)

	report, err := f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, kindReport(report, entity.PendingKindMessage).Accepted, "una falla en conteos no frena mensajes")
	assert.Empty(t, f.pending(t, entity.PendingKindMessage))
	assert.Len(t, f.pending(t, entity.PendingKindInventoryCount), 1)
}

func TestRunOnce_AgotaIntentosQuedaDetenido(t *testing.T) {
	f := newFixture(t, delivery.Policy{MaxAttempts: 2, BackoffBase: time.Millisecond, BackoffMax: time.Millisecond})
	f.count(t, "A")
	f.gw.set("A", errServer)

	for i := 0; i < 2; i++ {
		_, err := f.sub.RunOnce(context.Background())
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}
	report, err := f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, kindReport(report, entity.PendingKindInventoryCount).Stalled)
	assert.Len(t, f.gw.calls(), 2, "detenido: sin más intentos automáticos")
	assert.Len(t, f.pending(t, entity.PendingKindInventoryCount), 1, "detenido no es descartado")

	// Un registro detenido no bloquea a los que llegan después.
	f.count(t, "B")
	report, err = f.sub.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, kindReport(report, entity.PendingKindInventoryCount).Accepted)
	assert.Equal(t, []string{"A", "A", "B"}, f.gw.calls())
}

// ──────────────────────────────────────────────────────────────────────────────
// Policy
// ──────────────────────────────────────────────────────────────────────────────

func TestPolicy_BackoffExponencialConTope(t *testing.T) {
	p := delivery.Policy{BackoffBase: 15 * time.Second, BackoffMax: time.Minute}
	assert.Equal(t, 15*time.Second, p.Backoff(0))
	assert.Equal(t, 15*time.Second, p.Backoff(1))
	assert.Equal(t, 30*time.Second, p.Backoff(2))
	assert.Equal(t, time.Minute, p.Backoff(3))
	assert.Equal(t, time.Minute, p.Backoff(40))
}

func TestPolicy_Stalled(t *testing.T) {
	p := delivery.Policy{MaxAttempts: 3}
	assert.False(t, p.Stalled(2))
	assert.True(t, p.Stalled(3))
	assert.False(t, delivery.Policy{}.Stalled(100), "MaxAttempts 0 no detiene nunca")
}
