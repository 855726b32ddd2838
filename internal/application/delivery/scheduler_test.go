package delivery_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

type countingRunner struct {
	runs    atomic.Int32
	offline atomic.Bool
}

func (r *countingRunner) RunOnce(context.Context) (delivery.Report, error) {
	r.runs.Add(1)
	kr := delivery.KindReport{Kind: entity.PendingKindMovement}
	if r.offline.Load() {
		kr.Halted = "offline"
	}
	return delivery.Report{Kinds: []delivery.KindReport{kr}}, nil
}

func TestScheduler_CicloInicialYTrigger(t *testing.T) {
	runner := &countingRunner{}
	s := delivery.NewScheduler(runner, 0, zerolog.Nop())
	reports := make(chan delivery.Report, 8)
	s.OnReport(func(r delivery.Report) { reports <- r })

	s.Start(context.Background())
	defer s.Stop()

	waitReport(t, reports)
	s.Trigger()
	waitReport(t, reports)
	assert.EqualValues(t, 2, runner.runs.Load())

	last, err := s.LastReport()
	require.NoError(t, err)
	require.NotNil(t, last)
}

func TestScheduler_ReconexionDisparaCiclo(t *testing.T) {
	runner := &countingRunner{}
	runner.offline.Store(true)
	s := delivery.NewScheduler(runner, 0, zerolog.Nop())
	reports := make(chan delivery.Report, 8)
	s.OnReport(func(r delivery.Report) { reports <- r })

	s.Start(context.Background())
	defer s.Stop()

	waitReport(t, reports)
	assert.False(t, s.Online(), "el ciclo detectó falta de conexión")

	runner.offline.Store(false)
	s.SetOnline(true)
	waitReport(t, reports)
	assert.True(t, s.Online())
}

func TestScheduler_StopEsIdempotente(t *testing.T) {
	s := delivery.NewScheduler(&countingRunner{}, time.Hour, zerolog.Nop())
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}

func waitReport(t *testing.T, ch <-chan delivery.Report) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no llegó el reporte del ciclo")
	}
}
