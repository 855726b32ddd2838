package entity

import "github.com/jhoicas/wms-sync-agent/internal/domain"

// MovementKind tipo de movimiento de stock sujeto a aprobación.
type MovementKind string

// Tipos de movimiento; son excluyentes y determinan qué ubicaciones aplican.
const (
	MovementIngreso     MovementKind = "INGRESO"     // entrada: solo destino
	MovementEgreso      MovementKind = "EGRESO"      // salida: solo origen
	MovementReubicacion MovementKind = "REUBICACION" // traslado: origen y destino
)

// Valid indica si k es un tipo conocido.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementIngreso, MovementEgreso, MovementReubicacion:
		return true
	}
	return false
}

// CheckLocations valida que las ubicaciones requeridas por el tipo estén presentes.
func (k MovementKind) CheckLocations(source, destination *int64) error {
	switch k {
	case MovementIngreso:
		if destination == nil || *destination <= 0 {
			return domain.Invalid("idUbicacionDestino", "es requerido para INGRESO")
		}
	case MovementEgreso:
		if source == nil || *source <= 0 {
			return domain.Invalid("idUbicacionOrigen", "es requerido para EGRESO")
		}
	case MovementReubicacion:
		if source == nil || *source <= 0 {
			return domain.Invalid("idUbicacionOrigen", "es requerido para REUBICACION")
		}
		if destination == nil || *destination <= 0 {
			return domain.Invalid("idUbicacionDestino", "es requerido para REUBICACION")
		}
		if *source == *destination {
			return domain.Invalid("idUbicacionDestino", "debe ser distinta del origen")
		}
	default:
		return domain.Invalid("tipoMovimiento", "desconocido")
	}
	return nil
}
