package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// SaleUseCase orquesta una venta como unidad atómica: bloqueo de fila del
// producto, verificación de stock, decremento con recálculo de estado,
// transacción SALE del ledger, consecutivo de factura y alta de la factura.
// Si cualquier paso falla se revierte todo; nunca queda stock decrementado
// sin su entrada del ledger ni factura sin su transacción.
type SaleUseCase struct {
	txRunner TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner}
}

// Sell vende quantity unidades del producto del usuario y devuelve la factura creada.
// Errores: ErrInvalidQuantity (quantity ≤ 0), ErrNotFound, ErrInsufficientStock.
func (uc *SaleUseCase) Sell(ctx context.Context, userID, productCode string, quantity int64) (*entity.Invoice, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	var invoice *entity.Invoice
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		ledger repository.TransactionRepository,
		invoices repository.InvoiceRepository,
		sequences repository.SequenceRepository,
	) error {
		// Serializa ventas/compras concurrentes del mismo producto (SELECT FOR UPDATE)
		p, err := products.GetByUserAndCodeForUpdate(ctx, userID, productCode)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if quantity > p.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		p.Quantity -= quantity
		p.RecomputeStatus()
		if err := products.UpdateStock(ctx, p.ID, p.Quantity, p.Status); err != nil {
			return err
		}

		amount := decimal.NewFromInt(quantity).Mul(p.Price)
		txn := &entity.Transaction{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: p.ID,
			Quantity:  quantity,
			Amount:    amount,
			Type:      entity.TransactionTypeSale,
			CreatedAt: now,
		}
		if err := ledger.Create(ctx, txn); err != nil {
			return err
		}

		// El contador serializa la asignación: dos ventas concurrentes nunca
		// comparten consecutivo aunque esta tx aún no haya hecho commit.
		seq, err := sequences.NextInvoiceNumber(ctx)
		if err != nil {
			return err
		}
		invoice = &entity.Invoice{
			ID:        uuid.New().String(),
			UserID:    userID,
			InvoiceID: entity.FormatInvoiceNumber(seq),
			ProductID: p.ID,
			Quantity:  quantity,
			Price:     p.Price,
			Amount:    amount,
			Status:    entity.InvoiceStatusUnpaid,
			DueDate:   now.AddDate(0, 0, entity.InvoiceDueOffsetDays),
			CreatedAt: now,
			UpdatedAt: now,
		}
		return invoices.Create(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}
