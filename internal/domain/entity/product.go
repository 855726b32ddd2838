package entity

import "github.com/shopspring/decimal"

// Product equipo fotográfico del catálogo.
type Product struct {
	SKU      string
	Name     string
	Brand    string
	Category string
	Price    decimal.Decimal
	Stock    int
	Active   bool
}
