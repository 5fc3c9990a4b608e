package inventory

import (
	"context"

	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la mutación de stock, la entrada del ledger y la
// factura sean visibles juntas o ninguna (contrato de atomicidad del motor).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		ledger repository.TransactionRepository,
		invoices repository.InvoiceRepository,
		sequences repository.SequenceRepository,
	) error) error
}
