package entity

import "time"

// Message mensaje interno entre usuarios del almacén.
type Message struct {
	ID          int64
	SenderID    int64
	SenderName  string
	RecipientID *int64
	Title       string
	Body        string
	Important   bool
	Read        bool
	SentAt      time.Time
	ClientRef   string
	LocalID     int64 // >0 solo si sigue en la cola local
}
