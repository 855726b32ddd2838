package entity

import (
	"fmt"
	"strings"
)

// Location ubicación física del almacén (zona, pasillo, estante, nivel).
type Location struct {
	ID       int64
	Zone     string
	Aisle    int
	Shelf    int
	Level    int
	Capacity int
	Occupied int
	Active   bool
}

// Code devuelve el código de ubicación ZONA-PP-EE-N, por ejemplo A-03-02-1.
func (l *Location) Code() string {
	return FormatLocationCode(l.Zone, l.Aisle, l.Shelf, l.Level)
}

// FormatLocationCode arma el código de ubicación.
func FormatLocationCode(zone string, aisle, shelf, level int) string {
	return fmt.Sprintf("%s-%02d-%02d-%d", strings.ToUpper(strings.TrimSpace(zone)), aisle, shelf, level)
}

// ParseLocationCode es el inverso de FormatLocationCode.
func ParseLocationCode(code string) (zone string, aisle, shelf, level int, err error) {
	parts := strings.Split(strings.TrimSpace(code), "-")
	if len(parts) != 4 || parts[0] == "" {
		return "", 0, 0, 0, fmt.Errorf("código de ubicación inválido: %q", code)
	}
	if _, err := fmt.Sscanf(parts[1]+" "+parts[2]+" "+parts[3], "%d %d %d", &aisle, &shelf, &level); err != nil {
		return "", 0, 0, 0, fmt.Errorf("código de ubicación inválido: %q", code)
	}
	return strings.ToUpper(parts[0]), aisle, shelf, level, nil
}

// Available capacidad libre (nunca negativa).
func (l *Location) Available() int {
	if l.Occupied >= l.Capacity {
		return 0
	}
	return l.Capacity - l.Occupied
}
