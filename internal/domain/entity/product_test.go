package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estado derivado de stock
// ──────────────────────────────────────────────────────────────────────────────

// StatusFor: cantidad 0 gana siempre (aun con umbral 0), cantidad ≤ umbral es
// Low Stock, el resto In Stock.
func TestStatusFor(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int64
		threshold int64
		want      string
	}{
		{"cantidad cero", 0, 5, entity.StatusOutOfStock},
		{"cantidad cero con umbral cero", 0, 0, entity.StatusOutOfStock},
		{"igual al umbral", 5, 5, entity.StatusLowStock},
		{"bajo el umbral", 3, 5, entity.StatusLowStock},
		{"justo sobre el umbral", 6, 5, entity.StatusInStock},
		{"umbral cero con stock", 1, 0, entity.StatusInStock},
		{"stock holgado", 100, 5, entity.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.StatusFor(tc.quantity, tc.threshold))
		})
	}
}

func TestRecomputeStatus(t *testing.T) {
	p := &entity.Product{Quantity: 2, Threshold: 5, Status: entity.StatusInStock}
	p.RecomputeStatus()
	assert.Equal(t, entity.StatusLowStock, p.Status)

	p.Quantity = 0
	p.RecomputeStatus()
	assert.Equal(t, entity.StatusOutOfStock, p.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveCategory(t *testing.T) {
	// Nombre canónico, minúsculas y espacios alrededor resuelven igual.
	for _, in := range []string{"Grocery", "grocery", "  GROCERY  "} {
		got, ok := entity.ResolveCategory(in)
		assert.True(t, ok, "entrada %q", in)
		assert.Equal(t, "Grocery", got)
	}

	_, ok := entity.ResolveCategory("No Existe")
	assert.False(t, ok)

	_, ok = entity.ResolveCategory("")
	assert.False(t, ok)
}

// El catálogo es fijo: 14 categorías terminando en Other.
func TestCategories_CatalogoFijo(t *testing.T) {
	assert.Len(t, entity.Categories, 14)
	assert.Equal(t, entity.CategoryOther, entity.Categories[len(entity.Categories)-1])
}
