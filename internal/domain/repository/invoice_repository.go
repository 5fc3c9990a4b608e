package repository

import (
	"context"

	"github.com/tu-usuario/stockbook/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Solo Status es mutable (Unpaid → Paid); montos y cantidad nunca se tocan.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByUserAndID(ctx context.Context, userID, id string) (*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID, search string, limit, offset int) ([]*entity.Invoice, int, error)
}
