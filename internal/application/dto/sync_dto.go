package dto

import "time"

// SyncStatusResponse estado de la cola de envío.
type SyncStatusResponse struct {
	Online    bool                      `json:"enLinea"`
	Pending   map[string]int            `json:"pendientes"`
	Stalled   []DeliveryAttemptResponse `json:"detenidos"`
	Retrying  []DeliveryAttemptResponse `json:"reintentando"`
	Rejected  []RejectedRecordResponse  `json:"rechazados"`
	LastRunAt *time.Time                `json:"ultimoEnvio,omitempty"`
	LastError string                    `json:"ultimoError,omitempty"`
}

// DeliveryAttemptResponse registro con entregas fallidas.
type DeliveryAttemptResponse struct {
	Kind          string    `json:"tipo"`
	LocalID       int64     `json:"idLocal"`
	Attempts      int       `json:"intentos"`
	LastError     string    `json:"ultimoError"`
	NextAttemptAt time.Time `json:"proximoIntento"`
}

// RejectedRecordResponse registro rechazado por el servidor.
type RejectedRecordResponse struct {
	ID         int64     `json:"id"`
	Kind       string    `json:"tipo"`
	LocalID    int64     `json:"idLocal"`
	ClientRef  string    `json:"referenciaCliente"`
	Status     int       `json:"status"`
	Code       string    `json:"codigo,omitempty"`
	Message    string    `json:"mensaje"`
	RejectedAt time.Time `json:"fechaRechazo"`
}

// RejectedDetailResponse rechazo con el contenido que el usuario puede corregir.
// Solo uno de los campos de contenido viene informado, según el tipo.
type RejectedDetailResponse struct {
	RejectedRecordResponse
	Movement   *CreateMovementRequest `json:"movimiento,omitempty"`
	Count      *RegisterCountRequest  `json:"conteo,omitempty"`
	Outgoing   *SendMessageRequest    `json:"mensajeEnCola,omitempty"`
	Assignment *AssignLocationRequest `json:"asignacion,omitempty"`
}

// RequeueRequest body opcional de POST /v1/sync/rechazados/{id}/reencolar.
// Vacío reenvía el contenido original; si trae la corrección debe ser del tipo del rechazo.
type RequeueRequest struct {
	Movement   *CreateMovementRequest `json:"movimiento,omitempty"`
	Count      *RegisterCountRequest  `json:"conteo,omitempty"`
	Outgoing   *SendMessageRequest    `json:"mensajeEnCola,omitempty"`
	Assignment *AssignLocationRequest `json:"asignacion,omitempty"`
}

// ConnectivityRequest body de PUT /v1/sync/conectividad.
type ConnectivityRequest struct {
	Online *bool `json:"enLinea"`
}
