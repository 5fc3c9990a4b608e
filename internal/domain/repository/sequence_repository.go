package repository

import "context"

// SequenceRepository asigna consecutivos de factura únicos y estrictamente
// crecientes a nivel de todo el sistema. La implementación debe serializar la
// asignación (fila contador con incremento atómico); leer "la última factura"
// y sumar uno no es seguro bajo ventas concurrentes.
type SequenceRepository interface {
	// NextInvoiceNumber devuelve el siguiente consecutivo (1001 si no se ha emitido ninguno).
	NextInvoiceNumber(ctx context.Context) (int64, error)
}
