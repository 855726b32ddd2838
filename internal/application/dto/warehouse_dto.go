package dto

// LocationResponse ubicación física del almacén.
type LocationResponse struct {
	ID        int64  `json:"id"`
	Code      string `json:"codigo,omitempty"`
	Zone      string `json:"zona"`
	Aisle     int    `json:"pasillo"`
	Shelf     int    `json:"estante"`
	Level     int    `json:"nivel"`
	Capacity  int    `json:"capacidad"`
	Occupied  int    `json:"ocupada"`
	Available int    `json:"disponible,omitempty"`
	Active    bool   `json:"activa"`
}

// AssignLocationRequest body de POST /api/ubicaciones/asignaciones.
type AssignLocationRequest struct {
	SKU        string `json:"sku"`
	LocationID int64  `json:"idUbicacion"`
	Quantity   int    `json:"cantidad"`
}
