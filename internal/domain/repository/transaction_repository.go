package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stockbook/internal/domain/entity"
)

// TransactionFilter filtros de lectura sobre el ledger: tipo y rango de fechas.
// Campos en cero significan "sin filtro".
type TransactionFilter struct {
	Type string
	From time.Time
	To   time.Time
}

// TransactionRepository define el puerto del ledger. Solo alta y lectura:
// las transacciones son inmutables por diseño, no hay Update ni Delete.
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	ListByUser(ctx context.Context, userID string, filter TransactionFilter) ([]*entity.Transaction, error)
}
