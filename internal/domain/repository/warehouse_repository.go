package repository

import (
	"context"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// LocationRepository ubicaciones físicas del almacén.
type LocationRepository interface {
	List(ctx context.Context) ([]*entity.Location, error)
}
