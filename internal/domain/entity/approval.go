package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/wms-sync-agent/internal/domain"
)

// Estados de una solicitud de aprobación.
const (
	ApprovalPending  = "PENDIENTE"
	ApprovalApproved = "APROBADO"
	ApprovalRejected = "RECHAZADO"
	// ApprovalUnsent solo existe en el dispositivo: la solicitud sigue en la cola local.
	ApprovalUnsent = "PENDIENTE_ENVIO"
)

// Approval solicitud de movimiento tal como la conoce el servidor.
type Approval struct {
	ID                    int64
	Type                  MovementKind
	SKU                   string
	ProductName           string
	Quantity              int
	Reason                string
	SourceLocationID      *int64
	DestinationLocationID *int64
	Status                string
	RequesterID           int64
	RequesterName         string
	ApproverID            *int64
	Observations          string
	CreatedAt             time.Time
	DecidedAt             *time.Time
	ClientRef             string // referencia de idempotencia con que se creó, si vino de un dispositivo
	LocalID               int64  // >0 solo para solicitudes aún en la cola local
}

// IsTerminal indica si ya se registró una decisión.
func (a *Approval) IsTerminal() bool {
	return a.Status == ApprovalApproved || a.Status == ApprovalRejected
}

// ApprovalDecision transición terminal sobre una solicitud.
type ApprovalDecision struct {
	Status       string
	Observations string
	ApproverID   int64
}

// NewApprovalDecision construye una decisión. Rechazar exige observación; aprobar no.
func NewApprovalDecision(status, observations string, approverID int64) (*ApprovalDecision, error) {
	obs := strings.TrimSpace(observations)
	switch status {
	case ApprovalApproved:
	case ApprovalRejected:
		if obs == "" {
			return nil, domain.Invalid("observaciones", "son obligatorias al rechazar")
		}
	default:
		return nil, domain.Invalid("estado", "debe ser APROBADO o RECHAZADO")
	}
	if approverID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	return &ApprovalDecision{Status: status, Observations: obs, ApproverID: approverID}, nil
}

// Apply registra la decisión sobre la solicitud. Una decisión es definitiva.
func (d *ApprovalDecision) Apply(a *Approval, now time.Time) error {
	if a.IsTerminal() || a.Status != ApprovalPending {
		return domain.ErrConflict
	}
	approver := d.ApproverID
	a.Status = d.Status
	a.Observations = d.Observations
	a.ApproverID = &approver
	a.DecidedAt = &now
	return nil
}
