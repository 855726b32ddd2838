package repository

import (
	"context"
	"time"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// PendingStore define el puerto del almacén local de registros pendientes (append-only por tipo).
type PendingStore interface {
	// Enqueue valida y persiste el registro de forma durable; devuelve el ID local asignado.
	Enqueue(ctx context.Context, rec entity.PendingRecord) (int64, error)
	// Retire elimina un registro. Un ID desconocido o ya retirado no es error.
	Retire(ctx context.Context, kind entity.PendingKind, localID int64) error
	// ListPending devuelve los registros no retirados del tipo, en orden de inserción.
	ListPending(ctx context.Context, kind entity.PendingKind) ([]entity.PendingRecord, error)
	// Get devuelve nil, nil si el registro no existe.
	Get(ctx context.Context, kind entity.PendingKind, localID int64) (entity.PendingRecord, error)
	CountPending(ctx context.Context) (map[entity.PendingKind]int, error)
}

// DeliveryLedger guarda el estado de entrega que no forma parte del registro:
// intentos fallidos con backoff y registros rechazados por el servidor.
type DeliveryLedger interface {
	Attempt(ctx context.Context, kind entity.PendingKind, localID int64) (*entity.DeliveryAttempt, error)
	RecordFailure(ctx context.Context, kind entity.PendingKind, localID int64, lastErr string, next time.Time) (*entity.DeliveryAttempt, error)
	ResetAttempts(ctx context.Context) (int, error)
	ListAttempts(ctx context.Context) ([]*entity.DeliveryAttempt, error)

	// Reject mueve el registro a rejected_records y lo retira de la cola en una sola transacción.
	Reject(ctx context.Context, rec entity.PendingRecord, rej *domain.RejectionError) (*entity.RejectedRecord, error)
	ListRejected(ctx context.Context) ([]*entity.RejectedRecord, error)
	DiscardRejected(ctx context.Context, id int64) error
	GetRejected(ctx context.Context, id int64) (*entity.RejectedRecord, entity.PendingRecord, error)
	// Requeue vuelve a encolar un rechazo con un ID local nuevo. corrected es la
	// versión editada (mismo tipo); nil reenvía el contenido original.
	Requeue(ctx context.Context, id int64, corrected entity.PendingRecord) (entity.PendingRecord, error)
}
