package dto

// ErrorResponse cuerpo de error HTTP (API local y respuestas de error del servidor).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// CreatedResponse respuesta del servidor al crear un recurso.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// QueuedResponse respuesta de la API local a una escritura local-first.
type QueuedResponse struct {
	Kind      string `json:"kind"`
	LocalID   int64  `json:"idLocal"`
	ClientRef string `json:"referenciaCliente"`
	Status    string `json:"estado"`
}
