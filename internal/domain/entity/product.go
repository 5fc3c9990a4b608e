package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados. Nunca se asignan directamente desde un caller:
// siempre se recalculan con StatusFor en cada mutación de cantidad o umbral.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Categorías fijas de producto. CategoryOther es el fallback de la importación masiva.
var Categories = []string{
	"Beverage",
	"Snack",
	"Grocery",
	"Home Product",
	"Personal Care",
	"Cleaning Supplies",
	"Stationery",
	"Electronics",
	"Medicine",
	"Baby Products",
	"Pet Supplies",
	"Frozen Food",
	"Bakery",
	"Other",
}

// CategoryOther categoría asignada en importación masiva cuando la del archivo no se reconoce.
const CategoryOther = "Other"

// Product representa un producto del inventario, propiedad exclusiva de un usuario (tenant).
// ProductID es el código visible del producto, único por usuario (no global).
// Status es un campo derivado de (Quantity, Threshold); la columna persistida es solo caché.
type Product struct {
	ID         string
	UserID     string
	ProductID  string
	Name       string
	Category   string
	Price      decimal.Decimal
	Quantity   int64
	Unit       string
	ExpiryDate *time.Time
	Threshold  int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StatusFor deriva el estado de stock a partir de cantidad y umbral.
// Única fuente de verdad del estado: cantidad 0 → Out of Stock;
// cantidad ≤ umbral → Low Stock; si no → In Stock.
func StatusFor(quantity, threshold int64) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// RecomputeStatus recalcula el estado derivado. Llamar tras toda mutación de Quantity o Threshold.
func (p *Product) RecomputeStatus() {
	p.Status = StatusFor(p.Quantity, p.Threshold)
}

// ResolveCategory busca la categoría en el catálogo fijo sin distinguir mayúsculas.
// Devuelve el nombre canónico y true si existe.
func ResolveCategory(s string) (string, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c, strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}
