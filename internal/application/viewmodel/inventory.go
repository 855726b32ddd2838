package viewmodel

import (
	"context"
	"fmt"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// CountForm lectura física capturada por el operador. PhysicalQuantity nil = campo vacío.
type CountForm struct {
	SKU              string
	LocationID       int64
	PhysicalQuantity *int
}

// InventoryViewModel toma física de inventario.
type InventoryViewModel struct {
	scope     *Scope
	inventory repository.InventoryRepository
	store     repository.PendingStore
	sessions  SessionSource
	trigger   SyncTrigger
	progress  *Container[*entity.InventoryProgress]
	action    *Container[Outcome]
}

func NewInventoryViewModel(ctx context.Context, inventory repository.InventoryRepository, store repository.PendingStore, sessions SessionSource, trigger SyncTrigger) *InventoryViewModel {
	return &InventoryViewModel{
		scope:     NewScope(ctx),
		inventory: inventory,
		store:     store,
		sessions:  sessions,
		trigger:   trigger,
		progress:  NewContainer[*entity.InventoryProgress](),
		action:    NewContainer[Outcome](),
	}
}

func (vm *InventoryViewModel) Progress() *Container[*entity.InventoryProgress] { return vm.progress }
func (vm *InventoryViewModel) Action() *Container[Outcome]                    { return vm.action }
func (vm *InventoryViewModel) Close()                                         { vm.scope.Close() }

// LoadProgress consulta el avance de la toma en el servidor.
func (vm *InventoryViewModel) LoadProgress(ctx context.Context) State[*entity.InventoryProgress] {
	return op(vm.scope, ctx, vm.progress, func(ctx context.Context) (*entity.InventoryProgress, error) {
		if _, err := requireSession(ctx, vm.sessions); err != nil {
			return nil, err
		}
		return vm.inventory.Progress(ctx)
	})
}

// RegisterCount guarda el conteo en el dispositivo.
func (vm *InventoryViewModel) RegisterCount(ctx context.Context, form CountForm) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		if _, err := requireSession(ctx, vm.sessions); err != nil {
			return Outcome{}, err
		}
		if form.PhysicalQuantity == nil {
			return Outcome{}, domain.Invalid("cantidadFisica", "es requerida")
		}
		rec := &entity.PendingInventoryCount{
			SKU:              normalizeSKU(form.SKU),
			LocationID:       form.LocationID,
			PhysicalQuantity: *form.PhysicalQuantity,
		}
		return enqueue(ctx, vm.store, vm.trigger, rec)
	})
}

// PendingCounts conteos capturados que aún no llegan al servidor.
func (vm *InventoryViewModel) PendingCounts(ctx context.Context) ([]*entity.PendingInventoryCount, error) {
	recs, err := vm.store.ListPending(ctx, entity.PendingKindInventoryCount)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PendingInventoryCount, 0, len(recs))
	for _, rec := range recs {
		if c, ok := rec.(*entity.PendingInventoryCount); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// Differences compara los conteos pendientes con las cantidades del sistema.
func (vm *InventoryViewModel) Differences(ctx context.Context, system map[entity.StockKey]int) ([]entity.CountDifference, error) {
	counts, err := vm.PendingCounts(ctx)
	if err != nil {
		return nil, err
	}
	return entity.ComputeDifferences(system, counts), nil
}

// Finalize cierra la toma. Se rechaza mientras queden conteos sin enviar.
func (vm *InventoryViewModel) Finalize(ctx context.Context) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		sess, err := requireSession(ctx, vm.sessions)
		if err != nil {
			return Outcome{}, err
		}
		if !sess.CanApprove() {
			return Outcome{}, domain.ErrForbidden
		}
		counts, err := vm.store.CountPending(ctx)
		if err != nil {
			return Outcome{}, err
		}
		if n := counts[entity.PendingKindInventoryCount]; n > 0 {
			return Outcome{}, fmt.Errorf("%w: hay %d conteos sin enviar", domain.ErrConflict, n)
		}
		if err := vm.inventory.Finalize(ctx); err != nil {
			return Outcome{}, err
		}
		return Outcome{Message: "Inventario finalizado"}, nil
	})
}
