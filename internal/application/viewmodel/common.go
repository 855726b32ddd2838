package viewmodel

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

// Listing resultado de un listado. Offline indica que el servidor no respondió y
// los datos provienen solo del dispositivo.
type Listing[T any] struct {
	Items   []T
	Offline bool
}

// Outcome resultado de una acción del usuario.
type Outcome struct {
	Message   string
	LocalID   int64  // >0 si la escritura quedó en la cola local
	ClientRef string
	Queued    bool
}

// SyncTrigger pide un ciclo de envío sin esperar a que termine.
type SyncTrigger interface {
	Trigger()
}

// SessionSource sesión activa del dispositivo.
type SessionSource interface {
	Current(ctx context.Context) (*entity.Session, error)
}

const msgQueued = "Guardado en el dispositivo, pendiente de envío"

func requireSession(ctx context.Context, sessions SessionSource) (*entity.Session, error) {
	sess, err := sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

// enqueue persiste rec y avisa al submitter. Un error de validación nunca llega al almacén.
func enqueue(ctx context.Context, store repository.PendingStore, trigger SyncTrigger, rec entity.PendingRecord) (Outcome, error) {
	if err := rec.Validate(); err != nil {
		return Outcome{}, err
	}
	id, err := store.Enqueue(ctx, rec)
	if err != nil {
		return Outcome{}, err
	}
	if trigger != nil {
		trigger.Trigger()
	}
	return Outcome{Message: msgQueued, LocalID: id, ClientRef: rec.Meta().ClientRef, Queued: true}, nil
}

func isOffline(err error) bool { return errors.Is(err, domain.ErrOffline) }

func normalizeSKU(sku string) string { return strings.ToUpper(strings.TrimSpace(sku)) }

// lastKnown último listado remoto exitoso, para mostrar algo sin conexión.
type lastKnown[T any] struct {
	mu    sync.Mutex
	items []T
	ok    bool
}

func (c *lastKnown[T]) store(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
	c.ok = true
}

func (c *lastKnown[T]) load() ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...), c.ok
}

// fetch consulta el servidor y recurre a la caché cuando no hay conexión.
func fetch[T any](ctx context.Context, cache *lastKnown[T], list func(context.Context) ([]T, error)) ([]T, bool, error) {
	items, err := list(ctx)
	if err == nil {
		cache.store(items)
		return items, false, nil
	}
	if isOffline(err) {
		if cached, ok := cache.load(); ok {
			return cached, true, nil
		}
	}
	return nil, false, err
}
