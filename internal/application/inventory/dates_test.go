package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockbook/internal/application/inventory"
)

// ParseExpiry acepta ISO, día-mes-año y seriales de Excel; lo ilegible se
// descarta en silencio (la fecha de vencimiento nunca bloquea una fila).
func TestParseExpiry(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string // YYYY-MM-DD, "" = nil
	}{
		{"ISO", "2024-03-15", "2024-03-15"},
		{"día-mes-año con guiones", "15-03-2024", "2024-03-15"},
		{"día-mes-año con barras", "15/03/2024", "2024-03-15"},
		{"serial de Excel", "45291", "2023-12-31"},
		{"serial bajo el umbral se ignora", "123", ""},
		{"vacío", "", ""},
		{"texto arbitrario", "no-es-fecha", ""},
		{"mes fuera de rango", "2024-13-40", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.ParseExpiry(tc.in)
			if tc.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.Format("2006-01-02"))
		})
	}
}
