package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
)

// PendingKind identifica la tabla local de registros pendientes.
type PendingKind string

const (
	PendingKindMovement           PendingKind = "MOVEMENT"
	PendingKindInventoryCount     PendingKind = "INVENTORY_COUNT"
	PendingKindMessage            PendingKind = "MESSAGE"
	PendingKindLocationAssignment PendingKind = "LOCATION_ASSIGNMENT"
)

// PendingKinds lista todos los tipos en el orden en que se reportan.
var PendingKinds = []PendingKind{
	PendingKindMovement,
	PendingKindInventoryCount,
	PendingKindMessage,
	PendingKindLocationAssignment,
}

// Valid indica si k es un tipo conocido.
func (k PendingKind) Valid() bool {
	for _, known := range PendingKinds {
		if k == known {
			return true
		}
	}
	return false
}

// PendingMeta datos asignados por el almacén local al encolar.
type PendingMeta struct {
	ID        int64     // autoincremental por tipo, nunca reutilizado
	ClientRef string    // clave de idempotencia enviada al servidor
	CreatedAt time.Time
}

// Meta devuelve los metadatos del registro.
func (m PendingMeta) Meta() PendingMeta { return m }

// PendingRecord es una escritura local aún no confirmada por el servidor.
// Los registros son inmutables una vez encolados.
type PendingRecord interface {
	Kind() PendingKind
	Validate() error
	Meta() PendingMeta
}

// PendingMovementRequest solicitud de movimiento de stock pendiente de envío.
type PendingMovementRequest struct {
	PendingMeta
	Type                  MovementKind
	SKU                   string
	Quantity              int
	Reason                string
	SourceLocationID      *int64
	DestinationLocationID *int64
}

func (*PendingMovementRequest) Kind() PendingKind { return PendingKindMovement }

// Validate aplica el esquema y el invariante por tipo de movimiento.
func (r *PendingMovementRequest) Validate() error {
	if !r.Type.Valid() {
		return domain.Invalid("tipoMovimiento", "debe ser INGRESO, EGRESO o REUBICACION")
	}
	if strings.TrimSpace(r.SKU) == "" {
		return domain.Invalid("sku", "es requerido")
	}
	if r.Quantity <= 0 {
		return domain.Invalid("cantidad", "debe ser mayor que cero")
	}
	if strings.TrimSpace(r.Reason) == "" {
		return domain.Invalid("motivo", "es requerido")
	}
	return r.Type.CheckLocations(r.SourceLocationID, r.DestinationLocationID)
}

// Normalize descarta la ubicación que no aplica al tipo (INGRESO solo usa destino, EGRESO solo origen).
func (r *PendingMovementRequest) Normalize() {
	r.SKU = strings.ToUpper(strings.TrimSpace(r.SKU))
	r.Reason = strings.TrimSpace(r.Reason)
	switch r.Type {
	case MovementIngreso:
		r.SourceLocationID = nil
	case MovementEgreso:
		r.DestinationLocationID = nil
	}
}

// PendingInventoryCount lectura física de un SKU en una ubicación.
type PendingInventoryCount struct {
	PendingMeta
	SKU              string
	LocationID       int64
	PhysicalQuantity int
}

func (*PendingInventoryCount) Kind() PendingKind { return PendingKindInventoryCount }

func (c *PendingInventoryCount) Validate() error {
	if strings.TrimSpace(c.SKU) == "" {
		return domain.Invalid("sku", "es requerido")
	}
	if c.LocationID <= 0 {
		return domain.Invalid("idUbicacion", "es requerido")
	}
	if c.PhysicalQuantity < 0 {
		return domain.Invalid("cantidadFisica", "no puede ser negativa")
	}
	return nil
}

// PendingMessage mensaje en cola. RecipientID nil significa difusión a todos.
type PendingMessage struct {
	PendingMeta
	RecipientID *int64
	Title       string
	Body        string
	Important   bool
}

func (*PendingMessage) Kind() PendingKind { return PendingKindMessage }

func (m *PendingMessage) Validate() error {
	if m.RecipientID != nil && *m.RecipientID <= 0 {
		return domain.Invalid("idDestinatario", "inválido")
	}
	if strings.TrimSpace(m.Title) == "" {
		return domain.Invalid("titulo", "es requerido")
	}
	if strings.TrimSpace(m.Body) == "" {
		return domain.Invalid("contenido", "es requerido")
	}
	return nil
}

// IsBroadcast indica si el mensaje va a todos los destinatarios.
func (m *PendingMessage) IsBroadcast() bool { return m.RecipientID == nil }

// PendingLocationAssignment asignación de un producto a una ubicación física.
type PendingLocationAssignment struct {
	PendingMeta
	SKU        string
	LocationID int64
	Quantity   int
}

func (*PendingLocationAssignment) Kind() PendingKind { return PendingKindLocationAssignment }

func (a *PendingLocationAssignment) Validate() error {
	if strings.TrimSpace(a.SKU) == "" {
		return domain.Invalid("sku", "es requerido")
	}
	if a.LocationID <= 0 {
		return domain.Invalid("idUbicacion", "es requerido")
	}
	if a.Quantity <= 0 {
		return domain.Invalid("cantidad", "debe ser mayor que cero")
	}
	return nil
}

// RejectedRecord registro que el servidor rechazó de forma permanente.
// Se conserva para que el usuario lo corrija o lo descarte.
type RejectedRecord struct {
	ID         int64
	Kind       PendingKind
	LocalID    int64
	ClientRef  string
	Payload    []byte
	Status     int
	Code       string
	Message    string
	CreatedAt  time.Time
	RejectedAt time.Time
}

// DeliveryAttempt bitácora de reintentos de un registro pendiente.
type DeliveryAttempt struct {
	Kind          PendingKind
	LocalID       int64
	Attempts      int
	LastError     string
	NextAttemptAt time.Time
	UpdatedAt     time.Time
}
