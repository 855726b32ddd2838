package delivery

import (
	"context"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// Receipt confirmación del servidor para un registro aceptado.
type Receipt struct {
	ServerID  int64
	Duplicate bool // el servidor ya lo tenía por la clave de idempotencia
}

// Gateway entrega un registro pendiente a la autoridad remota.
//
// Contrato de errores:
//   - nil: aceptado (2xx con ID confirmado).
//   - *domain.RejectionError: rechazo permanente (4xx), no reintentar.
//   - domain.ErrOffline / domain.ErrUnauthorized: no tiene sentido seguir en este ciclo.
//   - cualquier otro: transitorio (5xx, timeout), reintentar con backoff.
type Gateway interface {
	Deliver(ctx context.Context, rec entity.PendingRecord) (*Receipt, error)
}
