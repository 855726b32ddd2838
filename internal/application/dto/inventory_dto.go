package dto

import "github.com/shopspring/decimal"

// InventoryProgressResponse respuesta de GET /api/inventario/progreso.
type InventoryProgressResponse struct {
	TotalLocations          int             `json:"totalUbicaciones"`
	CountedLocations        int             `json:"ubicacionesContadas"`
	PendingLocations        int             `json:"ubicacionesPendientes"`
	CompletedPct            decimal.Decimal `json:"porcentajeCompletado"`
	TotalDifferences        int             `json:"totalDiferenciasRegistradas"`
	TotalShortages          int             `json:"totalFaltantes"`
	TotalSurpluses          int             `json:"totalSobrantes"`
	LocationsWithDifference int             `json:"ubicacionesConDiferencias"`
}

// RegisterCountRequest body de POST /api/inventario/conteos y del formulario local.
type RegisterCountRequest struct {
	SKU              string `json:"sku"`
	LocationID       int64  `json:"idUbicacion"`
	PhysicalQuantity *int   `json:"cantidadFisica"`
}

// PendingCountResponse conteo aún en la cola local.
type PendingCountResponse struct {
	LocalID          int64  `json:"idLocal"`
	SKU              string `json:"sku"`
	LocationID       int64  `json:"idUbicacion"`
	PhysicalQuantity int    `json:"cantidadFisica"`
	CreatedAt        int64  `json:"fechaRegistro"`
}

// CountDifferenceResponse diferencia entre sistema y conteo físico.
type CountDifferenceResponse struct {
	SKU            string `json:"sku"`
	LocationID     int64  `json:"idUbicacion"`
	SystemQuantity int    `json:"cantidadSistema"`
	PhysicalCount  int    `json:"cantidadFisica"`
	Difference     int    `json:"diferencia"`
	Type           string `json:"tipo"`
}

// SystemStockRequest cantidades del sistema para calcular diferencias.
type SystemStockRequest struct {
	Items []SystemStockItem `json:"items"`
}

// SystemStockItem cantidad del sistema de un SKU en una ubicación.
type SystemStockItem struct {
	SKU        string `json:"sku"`
	LocationID int64  `json:"idUbicacion"`
	Quantity   int    `json:"cantidad"`
}
