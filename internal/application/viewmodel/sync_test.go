package viewmodel_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

type fakeControl struct {
	countTrigger
	online bool
	report *delivery.Report
}

func (c *fakeControl) Online() bool                          { return c.online }
func (c *fakeControl) LastReport() (*delivery.Report, error) { return c.report, nil }

func (c *fakeControl) SetOnline(online bool) {
	if online && !c.online {
		c.Trigger()
	}
	c.online = online
}

func newSyncVM(t *testing.T, e *env, policy delivery.Policy) (*viewmodel.SyncViewModel, *fakeControl) {
	t.Helper()
	ctl := &fakeControl{online: true}
	vm := viewmodel.NewSyncViewModel(context.Background(), e.store, e.ledger, ctl, policy, zerolog.Nop())
	t.Cleanup(vm.Close)
	return vm, ctl
}

func TestSyncStatus_PendientesPorTipo(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	inv := newInventoryVM(t, e)
	msg := newMessageVM(t, e)
	require.Equal(t, viewmodel.PhaseSuccess, inv.RegisterCount(context.Background(), viewmodel.CountForm{SKU: "AP30001", LocationID: 1, PhysicalQuantity: ptr(3)}).Phase)
	require.Equal(t, viewmodel.PhaseSuccess, msg.Send(context.Background(), viewmodel.MessageForm{Title: "a", Body: "b"}).Phase)

	vm, _ := newSyncVM(t, e, delivery.DefaultPolicy())
	st := vm.Refresh(context.Background())
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase, st.Message)
	assert.Equal(t, 2, st.Data.Total())
	assert.Equal(t, 1, st.Data.Pending[entity.PendingKindInventoryCount])
	assert.True(t, st.Data.Online)
}

func TestSyncNow_ReactivaDetenidos(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	inv := newInventoryVM(t, e)
	require.Equal(t, viewmodel.PhaseSuccess, inv.RegisterCount(context.Background(), viewmodel.CountForm{SKU: "AP30001", LocationID: 1, PhysicalQuantity: ptr(3)}).Phase)
	counts, err := inv.PendingCounts(context.Background())
	require.NoError(t, err)
	_, err = e.ledger.RecordFailure(context.Background(), entity.PendingKindInventoryCount, counts[0].ID, "503", time.Now().Add(time.Hour))
	require.NoError(t, err)

	policy := delivery.Policy{MaxAttempts: 1, BackoffBase: time.Second, BackoffMax: time.Minute}
	vm, ctl := newSyncVM(t, e, policy)
	require.Equal(t, 1, vm.Refresh(context.Background()).Data.Stalled)

	st := vm.SyncNow(context.Background())
	require.Equal(t, viewmodel.PhaseSuccess, st.Phase, st.Message)
	assert.Equal(t, 1, ctl.calls())
	assert.Zero(t, vm.Refresh(context.Background()).Data.Stalled)
}

func TestRejected_ReencolarYDescartar(t *testing.T) {
	e := newEnv(t)
	e.login(t, "operador@wms.co")
	loc := viewmodel.NewLocationViewModel(context.Background(), e.server.Locations(), e.store, e.sessions, e.trigger)
	defer loc.Close()
	require.Equal(t, viewmodel.PhaseSuccess, loc.AssignProduct(context.Background(), viewmodel.AssignForm{SKU: "AP99999", LocationID: 1, Quantity: 1}).Phase)
	require.Equal(t, viewmodel.PhaseSuccess, loc.AssignProduct(context.Background(), viewmodel.AssignForm{SKU: "AP88888", LocationID: 1, Quantity: 1}).Phase)

	vm, ctl := newSyncVM(t, e, delivery.DefaultPolicy())
	var notified atomic.Int32
	vm.OnRejected(func(*entity.RejectedRecord) { notified.Add(1) })
	e.sub.OnRejected(vm.NotifyRejected)
	e.drain(t)
	assert.Equal(t, int32(2), notified.Load())

	st := vm.Refresh(context.Background())
	require.Len(t, st.Data.Rejected, 2)
	first, second := st.Data.Rejected[0], st.Data.Rejected[1]

	_, original, err := vm.Rejected(context.Background(), first.ID)
	require.NoError(t, err)
	fixed, ok := original.(*entity.PendingLocationAssignment)
	require.True(t, ok)
	assert.Equal(t, "AP99999", fixed.SKU)
	fixed.SKU = "AP30001"

	out := vm.Requeue(context.Background(), first.ID, fixed)
	require.Equal(t, viewmodel.PhaseSuccess, out.Phase, out.Message)
	assert.True(t, out.Data.Queued)
	assert.NotEqual(t, first.ClientRef, out.Data.ClientRef)
	assert.Equal(t, 1, ctl.calls())

	stored, err := e.store.Get(context.Background(), entity.PendingKindLocationAssignment, out.Data.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "AP30001", stored.(*entity.PendingLocationAssignment).SKU, "se reencola la versión corregida")

	require.Equal(t, viewmodel.PhaseSuccess, vm.DiscardRejected(context.Background(), second.ID).Phase)
	st = vm.Refresh(context.Background())
	assert.Empty(t, st.Data.Rejected)
	assert.Equal(t, 1, st.Data.Pending[entity.PendingKindLocationAssignment])
}

func TestObserve_RefrescaTrasCadaCiclo(t *testing.T) {
	e := newEnv(t)
	vm, _ := newSyncVM(t, e, delivery.DefaultPolicy())
	ch, cancel := vm.Status().Subscribe()
	defer cancel()
	<-ch

	vm.Observe(delivery.Report{})
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st := <-ch:
			if st.Phase == viewmodel.PhaseSuccess {
				assert.Zero(t, st.Data.Total())
				return
			}
		case <-deadline:
			t.Fatal("el estado no se refrescó")
		}
	}
}

func TestSetOnline_ReconexionDisparaEnvio(t *testing.T) {
	e := newEnv(t)
	vm, ctl := newSyncVM(t, e, delivery.DefaultPolicy())

	vm.SetOnline(false)
	assert.False(t, vm.Refresh(context.Background()).Data.Online)
	assert.Zero(t, ctl.calls())

	vm.SetOnline(true)
	assert.True(t, vm.Refresh(context.Background()).Data.Online)
	assert.Equal(t, 1, ctl.calls())
}
