package repository

import (
	"context"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// ApprovalRepository solicitudes de movimiento confirmadas por el servidor.
// status vacío lista todas.
type ApprovalRepository interface {
	List(ctx context.Context, status string) ([]*entity.Approval, error)
	Approve(ctx context.Context, id int64, observations string) error
	Reject(ctx context.Context, id int64, observations string) error
}

// InventoryRepository toma física de inventario en el servidor.
type InventoryRepository interface {
	Progress(ctx context.Context) (*entity.InventoryProgress, error)
	Finalize(ctx context.Context) error
}

// MessageRepository bandeja de mensajes del usuario.
type MessageRepository interface {
	List(ctx context.Context) ([]*entity.Message, error)
}
