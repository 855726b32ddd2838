package dto

import "time"

// SendMessageRequest body de POST /api/mensajes.
type SendMessageRequest struct {
	RecipientID *int64 `json:"idDestinatario,omitempty"`
	Title       string `json:"titulo"`
	Body        string `json:"contenido"`
	Important   bool   `json:"importante"`
}

// MessageResponse mensaje de la bandeja. LocalID > 0 indica que sigue en la cola del dispositivo.
type MessageResponse struct {
	ID          int64     `json:"id"`
	LocalID     int64     `json:"idLocal,omitempty"`
	SenderID    int64     `json:"idRemitente,omitempty"`
	SenderName  string    `json:"remitente,omitempty"`
	RecipientID *int64    `json:"idDestinatario,omitempty"`
	Title       string    `json:"titulo"`
	Body        string    `json:"contenido"`
	Important   bool      `json:"importante"`
	Read        bool      `json:"leido"`
	SentAt      time.Time `json:"fecha"`
	ClientRef   string    `json:"referenciaCliente,omitempty"`
	Status      string    `json:"estado,omitempty"`
}
