package repository

import (
	"context"

	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// ProductRepository catálogo de productos.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
}
