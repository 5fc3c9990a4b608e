package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo asigna consecutivos de factura con una fila contador.
// El upsert con RETURNING es atómico: dos ventas concurrentes se serializan
// en el lock de la fila y nunca reciben el mismo número.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el asignador de consecutivos.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// NextInvoiceNumber devuelve el siguiente consecutivo. La primera asignación
// crea la fila con el valor inicial (1001); las siguientes incrementan en uno.
func (r *SequenceRepo) NextInvoiceNumber(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO invoice_counters (id, last_value)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_value = invoice_counters.last_value + 1
		RETURNING last_value`
	var n int64
	if err := r.q.QueryRow(ctx, query, entity.InvoiceFirstNumber).Scan(&n); err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return n, nil
}
