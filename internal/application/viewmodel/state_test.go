package viewmodel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Container
// ──────────────────────────────────────────────────────────────────────────────

func TestContainer_TransicionesValidas(t *testing.T) {
	c := viewmodel.NewContainer[int]()
	assert.Equal(t, viewmodel.PhaseIdle, c.Get().Phase)

	ticket := c.Begin()
	assert.Equal(t, viewmodel.PhaseLoading, c.Get().Phase)

	st, err := c.Complete(ticket, viewmodel.Success(7))
	require.NoError(t, err)
	assert.Equal(t, viewmodel.PhaseSuccess, st.Phase)
	assert.Equal(t, 7, c.Get().Data)

	ticket = c.Begin()
	st, err = c.Complete(ticket, viewmodel.Failure[int](domain.ErrOffline))
	require.NoError(t, err)
	assert.Equal(t, viewmodel.PhaseError, st.Phase)
	assert.Equal(t, "Sin conexión con el servidor", st.Message)
	assert.ErrorIs(t, st.Err, domain.ErrOffline)
}

func TestContainer_SinLoadingNoHayResultado(t *testing.T) {
	c := viewmodel.NewContainer[int]()
	ticket := c.Begin()
	_, err := c.Complete(ticket, viewmodel.Success(1))
	require.NoError(t, err)

	_, err = c.Complete(ticket, viewmodel.Failure[int](errors.New("tarde")))
	assert.ErrorIs(t, err, viewmodel.ErrInvalidTransition, "Success→Error sin pasar por Loading")
	assert.Equal(t, viewmodel.PhaseSuccess, c.Get().Phase)
}

func TestContainer_GanaLaUltimaOperacion(t *testing.T) {
	c := viewmodel.NewContainer[string]()
	first := c.Begin()
	second := c.Begin()

	_, err := c.Complete(second, viewmodel.Success("nuevo"))
	require.NoError(t, err)
	st, err := c.Complete(first, viewmodel.Success("viejo"))
	require.NoError(t, err)
	assert.Equal(t, "nuevo", st.Data, "el resultado de un ticket vencido se descarta")
}

func TestContainer_ResetNoInterrumpeLoading(t *testing.T) {
	c := viewmodel.NewContainer[int]()
	c.Begin()
	assert.ErrorIs(t, c.Reset(), viewmodel.ErrInvalidTransition)
}

func TestContainer_SuscriptorRecibeUltimoValor(t *testing.T) {
	c := viewmodel.NewContainer[int]()
	ch, cancel := c.Subscribe()
	defer cancel()

	assert.Equal(t, viewmodel.PhaseIdle, (<-ch).Phase)

	for i := 1; i <= 3; i++ {
		ticket := c.Begin()
		_, err := c.Complete(ticket, viewmodel.Success(i))
		require.NoError(t, err)
	}
	select {
	case st := <-ch:
		assert.Equal(t, viewmodel.PhaseSuccess, st.Phase)
		assert.Equal(t, 3, st.Data, "el canal conserva solo el último estado")
	case <-time.After(time.Second):
		t.Fatal("sin notificación")
	}

	cancel()
	_, open := <-ch
	assert.False(t, open)
}

// ──────────────────────────────────────────────────────────────────────────────
// Scope
// ──────────────────────────────────────────────────────────────────────────────

func TestScope_CloseCancelaTrabajoEnCurso(t *testing.T) {
	s := viewmodel.NewScope(context.Background())
	started := make(chan struct{})
	done := make(chan error, 1)
	s.Go(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		done <- ctx.Err()
	})
	<-started
	s.Close()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.True(t, s.Closed())

	_, _, err := s.Bind(context.Background())
	assert.ErrorIs(t, err, viewmodel.ErrClosed)
}

func TestScope_BindSeCancelaAlCerrar(t *testing.T) {
	s := viewmodel.NewScope(context.Background())
	ctx, done, err := s.Bind(context.Background())
	require.NoError(t, err)
	defer done()

	s.Close()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("el contexto ligado no se canceló")
	}
}
