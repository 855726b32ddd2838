package viewmodel

import (
	"context"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// ProductViewModel catálogo con búsqueda. Sin conexión muestra el último catálogo descargado.
type ProductViewModel struct {
	scope    *Scope
	products repository.ProductRepository
	sessions SessionSource
	cache    lastKnown[*entity.Product]
	list     *Container[Listing[*entity.Product]]
}

func NewProductViewModel(ctx context.Context, products repository.ProductRepository, sessions SessionSource) *ProductViewModel {
	return &ProductViewModel{
		scope:    NewScope(ctx),
		products: products,
		sessions: sessions,
		list:     NewContainer[Listing[*entity.Product]](),
	}
}

func (vm *ProductViewModel) List() *Container[Listing[*entity.Product]] { return vm.list }
func (vm *ProductViewModel) Close()                                    { vm.scope.Close() }

// Load busca por SKU, nombre o marca sin distinguir tildes; category vacía = todas.
func (vm *ProductViewModel) Load(ctx context.Context, search, category string) State[Listing[*entity.Product]] {
	return op(vm.scope, ctx, vm.list, func(ctx context.Context) (Listing[*entity.Product], error) {
		if _, err := requireSession(ctx, vm.sessions); err != nil {
			return Listing[*entity.Product]{}, err
		}
		all, offline, err := fetch(ctx, &vm.cache, vm.products.List)
		if err != nil {
			return Listing[*entity.Product]{}, err
		}
		out := Listing[*entity.Product]{Offline: offline}
		cat := fold(category)
		for _, p := range all {
			if cat != "" && fold(p.Category) != cat {
				continue
			}
			if matches(search, p.SKU, p.Name, p.Brand) {
				out.Items = append(out.Items, p)
			}
		}
		return out, nil
	})
}
