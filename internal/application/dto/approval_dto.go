package dto

import "time"

// CreateMovementRequest body de POST /api/aprobaciones y del formulario local.
type CreateMovementRequest struct {
	Type                  string `json:"tipoMovimiento"`
	SKU                   string `json:"sku"`
	Quantity              int    `json:"cantidad"`
	Reason                string `json:"motivo"`
	SourceLocationID      *int64 `json:"idUbicacionOrigen,omitempty"`
	DestinationLocationID *int64 `json:"idUbicacionDestino,omitempty"`
}

// DecisionRequest body de PUT /api/aprobaciones/{id}/aprobar|rechazar.
type DecisionRequest struct {
	Observations string `json:"observaciones,omitempty"`
}

// ApprovalResponse solicitud de movimiento. LocalID > 0 indica que sigue en la cola del dispositivo.
type ApprovalResponse struct {
	ID                    int64      `json:"id"`
	LocalID               int64      `json:"idLocal,omitempty"`
	Type                  string     `json:"tipoMovimiento"`
	SKU                   string     `json:"sku"`
	ProductName           string     `json:"producto,omitempty"`
	Quantity              int        `json:"cantidad"`
	Reason                string     `json:"motivo"`
	SourceLocationID      *int64     `json:"idUbicacionOrigen,omitempty"`
	DestinationLocationID *int64     `json:"idUbicacionDestino,omitempty"`
	Status                string     `json:"estado"`
	RequesterID           int64      `json:"idSolicitante,omitempty"`
	RequesterName         string     `json:"solicitante,omitempty"`
	ApproverID            *int64     `json:"idAprobador,omitempty"`
	Observations          string     `json:"observaciones,omitempty"`
	CreatedAt             time.Time  `json:"fechaSolicitud"`
	DecidedAt             *time.Time `json:"fechaDecision,omitempty"`
	ClientRef             string     `json:"referenciaCliente,omitempty"`
}
