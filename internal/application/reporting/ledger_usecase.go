package reporting

import (
	"context"

	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// LedgerQueryUseCase acceso de solo lectura al ledger crudo, filtrado por
// tenant, rango de fechas y tipo. No computa agregados: expone la secuencia
// tal cual para que los consumidores deriven lo que necesiten.
type LedgerQueryUseCase struct {
	ledger repository.TransactionRepository
}

// NewLedgerQueryUseCase construye el caso de uso.
func NewLedgerQueryUseCase(ledger repository.TransactionRepository) *LedgerQueryUseCase {
	return &LedgerQueryUseCase{ledger: ledger}
}

// List devuelve las transacciones del usuario que pasan el filtro.
func (uc *LedgerQueryUseCase) List(ctx context.Context, userID string, filter repository.TransactionFilter) ([]dto.TransactionResponse, error) {
	items, err := uc.ledger.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(items))
	for _, t := range items {
		out = append(out, dto.TransactionResponse{
			ID:        t.ID,
			ProductID: t.ProductID,
			Quantity:  t.Quantity,
			Amount:    t.Amount,
			Type:      t.Type,
			CreatedAt: t.CreatedAt,
		})
	}
	return out, nil
}
