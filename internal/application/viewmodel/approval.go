package viewmodel

import (
	"context"
	"strings"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// MovementForm formulario de solicitud de movimiento.
type MovementForm struct {
	Type                  string
	SKU                   string
	Quantity              int
	Reason                string
	SourceLocationID      *int64
	DestinationLocationID *int64
}

// ApprovalViewModel bandeja de solicitudes de movimiento y sus decisiones.
type ApprovalViewModel struct {
	scope     *Scope
	approvals repository.ApprovalRepository
	store     repository.PendingStore
	sessions  SessionSource
	trigger   SyncTrigger
	list      *Container[Listing[*entity.Approval]]
	action    *Container[Outcome]
}

func NewApprovalViewModel(ctx context.Context, approvals repository.ApprovalRepository, store repository.PendingStore, sessions SessionSource, trigger SyncTrigger) *ApprovalViewModel {
	return &ApprovalViewModel{
		scope:     NewScope(ctx),
		approvals: approvals,
		store:     store,
		sessions:  sessions,
		trigger:   trigger,
		list:      NewContainer[Listing[*entity.Approval]](),
		action:    NewContainer[Outcome](),
	}
}

func (vm *ApprovalViewModel) List() *Container[Listing[*entity.Approval]] { return vm.list }
func (vm *ApprovalViewModel) Action() *Container[Outcome]                 { return vm.action }
func (vm *ApprovalViewModel) Close()                                      { vm.scope.Close() }

// Load lista las solicitudes con el estado dado (vacío = todas). Las solicitudes aún en la
// cola local aparecen primero como PENDIENTE_ENVIO.
func (vm *ApprovalViewModel) Load(ctx context.Context, status string) State[Listing[*entity.Approval]] {
	return op(vm.scope, ctx, vm.list, func(ctx context.Context) (Listing[*entity.Approval], error) {
		status = strings.ToUpper(strings.TrimSpace(status))
		sess, err := requireSession(ctx, vm.sessions)
		if err != nil {
			return Listing[*entity.Approval]{}, err
		}
		pending, err := vm.pending(ctx, sess)
		if err != nil {
			return Listing[*entity.Approval]{}, err
		}
		showPending := status == "" || status == entity.ApprovalPending || status == entity.ApprovalUnsent
		if !showPending {
			pending = nil
		}
		if status == entity.ApprovalUnsent {
			return Listing[*entity.Approval]{Items: pending}, nil
		}

		remote, err := vm.approvals.List(ctx, status)
		if err != nil {
			if isOffline(err) {
				return Listing[*entity.Approval]{Items: pending, Offline: true}, nil
			}
			return Listing[*entity.Approval]{}, err
		}
		return Listing[*entity.Approval]{Items: mergeApprovals(pending, remote)}, nil
	})
}

func (vm *ApprovalViewModel) pending(ctx context.Context, sess *entity.Session) ([]*entity.Approval, error) {
	recs, err := vm.store.ListPending(ctx, entity.PendingKindMovement)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Approval, 0, len(recs))
	for _, rec := range recs {
		r, ok := rec.(*entity.PendingMovementRequest)
		if !ok {
			continue
		}
		out = append(out, &entity.Approval{
			Type:                  r.Type,
			SKU:                   r.SKU,
			Quantity:              r.Quantity,
			Reason:                r.Reason,
			SourceLocationID:      r.SourceLocationID,
			DestinationLocationID: r.DestinationLocationID,
			Status:                entity.ApprovalUnsent,
			RequesterID:           sess.UserID,
			RequesterName:         sess.Name,
			CreatedAt:             r.CreatedAt,
			ClientRef:             r.ClientRef,
			LocalID:               r.ID,
		})
	}
	return out, nil
}

// mergeApprovals oculta los pendientes que el servidor ya confirmó (misma referencia de cliente).
func mergeApprovals(pending, remote []*entity.Approval) []*entity.Approval {
	confirmed := make(map[string]struct{}, len(remote))
	for _, a := range remote {
		if a.ClientRef != "" {
			confirmed[a.ClientRef] = struct{}{}
		}
	}
	out := make([]*entity.Approval, 0, len(pending)+len(remote))
	for _, p := range pending {
		if _, ok := confirmed[p.ClientRef]; !ok {
			out = append(out, p)
		}
	}
	return append(out, remote...)
}

// Approve aprueba la solicitud id. La observación es opcional.
func (vm *ApprovalViewModel) Approve(ctx context.Context, id int64, observations string) State[Outcome] {
	return vm.decide(ctx, id, entity.ApprovalApproved, observations)
}

// Reject rechaza la solicitud id. La observación es obligatoria.
func (vm *ApprovalViewModel) Reject(ctx context.Context, id int64, observations string) State[Outcome] {
	return vm.decide(ctx, id, entity.ApprovalRejected, observations)
}

func (vm *ApprovalViewModel) decide(ctx context.Context, id int64, status, observations string) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		if id <= 0 {
			return Outcome{}, domain.Invalid("id", "inválido")
		}
		sess, err := requireSession(ctx, vm.sessions)
		if err != nil {
			return Outcome{}, err
		}
		if !sess.CanApprove() {
			return Outcome{}, domain.ErrForbidden
		}
		dec, err := entity.NewApprovalDecision(status, observations, sess.UserID)
		if err != nil {
			return Outcome{}, err
		}
		if dec.Status == entity.ApprovalApproved {
			err = vm.approvals.Approve(ctx, id, dec.Observations)
		} else {
			err = vm.approvals.Reject(ctx, id, dec.Observations)
		}
		if err != nil {
			return Outcome{}, err
		}
		if dec.Status == entity.ApprovalApproved {
			return Outcome{Message: "Solicitud aprobada"}, nil
		}
		return Outcome{Message: "Solicitud rechazada"}, nil
	})
}

// CreateMovementRequest guarda la solicitud en el dispositivo; el envío ocurre en segundo plano.
func (vm *ApprovalViewModel) CreateMovementRequest(ctx context.Context, form MovementForm) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		if _, err := requireSession(ctx, vm.sessions); err != nil {
			return Outcome{}, err
		}
		rec := &entity.PendingMovementRequest{
			Type:                  entity.MovementKind(strings.ToUpper(strings.TrimSpace(form.Type))),
			SKU:                   form.SKU,
			Quantity:              form.Quantity,
			Reason:                form.Reason,
			SourceLocationID:      form.SourceLocationID,
			DestinationLocationID: form.DestinationLocationID,
		}
		if err := rec.Validate(); err != nil {
			return Outcome{}, err
		}
		rec.Normalize()
		return enqueue(ctx, vm.store, vm.trigger, rec)
	})
}
