package entity

import "github.com/shopspring/decimal"

// InventoryProgress avance de la toma física de inventario.
type InventoryProgress struct {
	TotalLocations          int
	CountedLocations        int
	PendingLocations        int
	CompletedPct            decimal.Decimal
	TotalDifferences        int
	TotalShortages          int
	TotalSurpluses          int
	LocationsWithDifference int
}

var hundred = decimal.NewFromInt(100)

// ComputeProgress calcula ubicaciones pendientes y porcentaje completado (2 decimales).
// Con total cero el porcentaje es 0.
func ComputeProgress(total, counted int, diffs []CountDifference) InventoryProgress {
	if counted > total {
		counted = total
	}
	p := InventoryProgress{
		TotalLocations:   total,
		CountedLocations: counted,
		PendingLocations: total - counted,
		CompletedPct:     Percentage(counted, total),
	}
	withDiff := make(map[int64]struct{})
	for _, d := range diffs {
		if d.Difference == 0 {
			continue
		}
		p.TotalDifferences++
		if d.Type() == DifferenceShortage {
			p.TotalShortages++
		} else {
			p.TotalSurpluses++
		}
		withDiff[d.LocationID] = struct{}{}
	}
	p.LocationsWithDifference = len(withDiff)
	return p
}

// Percentage devuelve part/total*100 redondeado a 2 decimales (0 si total <= 0).
func Percentage(part, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(total)), 2)
}

// Tipos de diferencia de conteo.
const (
	DifferenceShortage = "FALTANTE"
	DifferenceSurplus  = "SOBRANTE"
	DifferenceNone     = "SIN_DIFERENCIA"
)

// CountDifference diferencia derivada entre cantidad del sistema y conteo físico.
type CountDifference struct {
	SKU            string
	LocationID     int64
	SystemQuantity int
	PhysicalCount  int
	Difference     int // físico - sistema
}

// Type clasifica la diferencia.
func (d CountDifference) Type() string {
	switch {
	case d.Difference < 0:
		return DifferenceShortage
	case d.Difference > 0:
		return DifferenceSurplus
	}
	return DifferenceNone
}

// StockKey identifica el stock de un SKU en una ubicación.
type StockKey struct {
	SKU        string
	LocationID int64
}

// ComputeDifferences compara los conteos con el stock del sistema.
// Si hay varios conteos del mismo SKU y ubicación, vale el último.
func ComputeDifferences(system map[StockKey]int, counts []*PendingInventoryCount) []CountDifference {
	latest := make(map[StockKey]int, len(counts))
	order := make([]StockKey, 0, len(counts))
	for _, c := range counts {
		k := StockKey{SKU: c.SKU, LocationID: c.LocationID}
		if _, seen := latest[k]; !seen {
			order = append(order, k)
		}
		latest[k] = c.PhysicalQuantity
	}
	out := make([]CountDifference, 0, len(order))
	for _, k := range order {
		sys := system[k]
		out = append(out, CountDifference{
			SKU:            k.SKU,
			LocationID:     k.LocationID,
			SystemQuantity: sys,
			PhysicalCount:  latest[k],
			Difference:     latest[k] - sys,
		})
	}
	return out
}
