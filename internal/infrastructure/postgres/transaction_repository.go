package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adaptador PostgreSQL del ledger. Append-only: no expone
// UPDATE ni DELETE sobre transactions.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del ledger.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta una entrada inmutable en el ledger.
func (r *TransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, product_id, quantity, amount, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		txn.ID, txn.UserID, txn.ProductID, txn.Quantity, txn.Amount, txn.Type, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByUser lista entradas del ledger del usuario, más recientes primero.
// Los filtros en cero no restringen nada.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID string, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `
		SELECT id, user_id, product_id, quantity, amount, type, created_at
		FROM transactions
		WHERE user_id = $1
		  AND ($2 = '' OR type = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		  AND ($4::timestamptz IS NULL OR created_at < $4)
		ORDER BY created_at DESC`

	from := nullableTime(filter.From)
	to := nullableTime(filter.To)

	rows, err := r.q.Query(ctx, query, userID, filter.Type, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.ProductID, &t.Quantity, &t.Amount, &t.Type, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
