package viewmodel

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// AssignForm asignación de producto a ubicación.
type AssignForm struct {
	SKU        string
	LocationID int64
	Quantity   int
}

// LocationViewModel mapa de ubicaciones del almacén.
type LocationViewModel struct {
	scope     *Scope
	locations repository.LocationRepository
	store     repository.PendingStore
	sessions  SessionSource
	trigger   SyncTrigger
	cache     lastKnown[*entity.Location]
	list      *Container[Listing[*entity.Location]]
	action    *Container[Outcome]
}

func NewLocationViewModel(ctx context.Context, locations repository.LocationRepository, store repository.PendingStore, sessions SessionSource, trigger SyncTrigger) *LocationViewModel {
	return &LocationViewModel{
		scope:     NewScope(ctx),
		locations: locations,
		store:     store,
		sessions:  sessions,
		trigger:   trigger,
		list:      NewContainer[Listing[*entity.Location]](),
		action:    NewContainer[Outcome](),
	}
}

func (vm *LocationViewModel) List() *Container[Listing[*entity.Location]] { return vm.list }
func (vm *LocationViewModel) Action() *Container[Outcome]                { return vm.action }
func (vm *LocationViewModel) Close()                                     { vm.scope.Close() }

// Load lista las ubicaciones de la zona (vacía = todas) ordenadas por código.
func (vm *LocationViewModel) Load(ctx context.Context, zone string) State[Listing[*entity.Location]] {
	return op(vm.scope, ctx, vm.list, func(ctx context.Context) (Listing[*entity.Location], error) {
		if _, err := requireSession(ctx, vm.sessions); err != nil {
			return Listing[*entity.Location]{}, err
		}
		all, offline, err := fetch(ctx, &vm.cache, vm.locations.List)
		if err != nil {
			return Listing[*entity.Location]{}, err
		}
		zone = strings.ToUpper(strings.TrimSpace(zone))
		out := Listing[*entity.Location]{Offline: offline}
		for _, l := range all {
			if zone == "" || strings.EqualFold(l.Zone, zone) {
				out.Items = append(out.Items, l)
			}
		}
		sort.SliceStable(out.Items, func(i, j int) bool { return out.Items[i].Code() < out.Items[j].Code() })
		return out, nil
	})
}

// AssignProduct guarda la asignación en el dispositivo.
func (vm *LocationViewModel) AssignProduct(ctx context.Context, form AssignForm) State[Outcome] {
	return op(vm.scope, ctx, vm.action, func(ctx context.Context) (Outcome, error) {
		if _, err := requireSession(ctx, vm.sessions); err != nil {
			return Outcome{}, err
		}
		rec := &entity.PendingLocationAssignment{
			SKU:        normalizeSKU(form.SKU),
			LocationID: form.LocationID,
			Quantity:   form.Quantity,
		}
		return enqueue(ctx, vm.store, vm.trigger, rec)
	})
}
