package viewmodel

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// SyncControl control del envío en segundo plano.
type SyncControl interface {
	Trigger()
	SetOnline(online bool)
	Online() bool
	LastReport() (*delivery.Report, error)
}

// SyncStatus resumen de la cola local para la pantalla de sincronización.
type SyncStatus struct {
	Pending    map[entity.PendingKind]int
	Attempts   []*entity.DeliveryAttempt
	Stalled    int // registros que agotaron los reintentos automáticos
	Policy     delivery.Policy
	Rejected   []*entity.RejectedRecord
	Online     bool
	LastReport *delivery.Report
	LastError  string
}

// Total registros pendientes de envío.
func (s SyncStatus) Total() int {
	n := 0
	for _, c := range s.Pending {
		n += c
	}
	return n
}

// SyncViewModel estado de la sincronización y gestión de rechazos.
type SyncViewModel struct {
	scope   *Scope
	store   repository.PendingStore
	ledger  repository.DeliveryLedger
	control SyncControl
	policy  delivery.Policy
	log     zerolog.Logger
	status  *Container[SyncStatus]
	action  *Container[Outcome]

	mu       sync.Mutex
	rejected []func(*entity.RejectedRecord)
}

func NewSyncViewModel(ctx context.Context, store repository.PendingStore, ledger repository.DeliveryLedger, control SyncControl, policy delivery.Policy, log zerolog.Logger) *SyncViewModel {
	return &SyncViewModel{
		scope:   NewScope(ctx),
		store:   store,
		ledger:  ledger,
		control: control,
		policy:  policy,
		log:     log.With().Str("vm", "sync").Logger(),
		status:  NewContainer[SyncStatus](),
		action:  NewContainer[Outcome](),
	}
}

func (vm *SyncViewModel) Status() *Container[SyncStatus] { return vm.status }
func (vm *SyncViewModel) Action() *Container[Outcome]    { return vm.action }
func (vm *SyncViewModel) Close()                         { vm.scope.Close() }

// OnRejected registra un aviso para cada rechazo nuevo del servidor.
func (vm *SyncViewModel) OnRejected(fn func(*entity.RejectedRecord)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.rejected = append(vm.rejected, fn)
}

// NotifyRejected se conecta a Submitter.OnRejected.
func (vm *SyncViewModel) NotifyRejected(rr *entity.RejectedRecord) {
	vm.mu.Lock()
	hooks := append([]func(*entity.RejectedRecord){}, vm.rejected...)
	vm.mu.Unlock()
	for _, fn := range hooks {
		fn(rr)
	}
}

// Observe se conecta a Scheduler.OnReport: refresca el estado tras cada ciclo.
func (vm *SyncViewModel) Observe(delivery.Report) {
	vm.scope.Go(func(ctx context.Context) {
		st := vm.Refresh(ctx)
		if st.Phase == PhaseError {
			vm.log.Warn().Err(st.Err).Msg("No se pudo refrescar el estado de sincronización")
		}
	})
}

// Refresh recalcula el estado de la cola local.
func (vm *SyncViewModel) Refresh(ctx context.Context) State[SyncStatus] {
	return op(vm.scope, ctx, vm.status, func(ctx context.Context) (SyncStatus, error) {
		counts, err := vm.store.CountPending(ctx)
		if err != nil {
			return SyncStatus{}, err
		}
		attempts, err := vm.ledger.ListAttempts(ctx)
		if err != nil {
			return SyncStatus{}, err
		}
		rejected, err := vm.ledger.ListRejected(ctx)
		if err != nil {
			return SyncStatus{}, err
		}
		st := SyncStatus{Pending: counts, Attempts: attempts, Rejected: rejected, Policy: vm.policy}
		for _, a := range attempts {
			if vm.policy.Stalled(a.Attempts) {
				st.Stalled++
			}
		}
		if vm.control != nil {
			st.Online = vm.control.Online()
			report, rerr := vm.control.LastReport()
			st.LastReport = report
			if rerr != nil {
				st.LastError = rerr.Error()
			}
		}
		return st, nil
	})
}

// SetOnline recibe el aviso de conectividad del sistema operativo. Al recuperarla
// el planificador dispara un ciclo de envío.
func (vm *SyncViewModel) SetOnline(online bool) {
	if vm.control == nil {
		return
	}
	vm.control.SetOnline(online)
	vm.log.Debug().Bool("en_linea", online).Msg("Cambio de conectividad")
}

// SyncNow reactiva los registros detenidos y dispara un ciclo de envío.
func (vm *SyncViewModel) SyncNow(ctx context.Context) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		n, err := vm.ledger.ResetAttempts(ctx)
		if err != nil {
			return Outcome{}, err
		}
		if vm.control != nil {
			vm.control.Trigger()
		}
		vm.log.Info().Int("reset", n).Msg("Sincronización manual solicitada")
		return Outcome{Message: "Sincronización en curso"}, nil
	})
}

// DiscardRejected elimina un rechazo sin reenviarlo.
func (vm *SyncViewModel) DiscardRejected(ctx context.Context, id int64) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		if err := vm.ledger.DiscardRejected(ctx, id); err != nil {
			return Outcome{}, err
		}
		return Outcome{Message: "Registro descartado"}, nil
	})
}

// Rejected devuelve un rechazo y su contenido para que el usuario lo corrija.
func (vm *SyncViewModel) Rejected(ctx context.Context, id int64) (*entity.RejectedRecord, entity.PendingRecord, error) {
	if id <= 0 {
		return nil, nil, domain.Invalid("id", "inválido")
	}
	return vm.ledger.GetRejected(ctx, id)
}

// Requeue vuelve a encolar un rechazo con un ID local y una referencia nuevos.
// corrected es la versión editada por el usuario; nil reenvía el contenido original.
func (vm *SyncViewModel) Requeue(ctx context.Context, id int64, corrected entity.PendingRecord) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		rec, err := vm.ledger.Requeue(ctx, id, corrected)
		if err != nil {
			return Outcome{}, err
		}
		if vm.control != nil {
			vm.control.Trigger()
		}
		meta := rec.Meta()
		return Outcome{Message: msgQueued, LocalID: meta.ID, ClientRef: meta.ClientRef, Queued: true}, nil
	})
}
