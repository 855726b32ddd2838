package dto

import "github.com/shopspring/decimal"

// ProductResponse producto del catálogo.
type ProductResponse struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"nombre"`
	Brand    string          `json:"marca"`
	Category string          `json:"categoria"`
	Price    decimal.Decimal `json:"precio"`
	Stock    int             `json:"stock"`
	Active   bool            `json:"activo"`
}
