package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusUnpaid = "Unpaid"
	InvoiceStatusPaid   = "Paid"
)

// Numeración de facturas: prefijo fijo + consecutivo global que arranca en 1001.
const (
	InvoicePrefix        = "INV"
	InvoiceFirstNumber   = 1001
	InvoiceDueOffsetDays = 7
)

// FormatInvoiceNumber devuelve el identificador visible de factura para un consecutivo dado.
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("%s-%d", InvoicePrefix, n)
}

// Invoice es la factura generada como efecto de una venta (una por transacción SALE).
// InvoiceID es el consecutivo visible (INV-1001, INV-1002, ...), único a nivel global.
// Price es el precio unitario del producto congelado al momento de la venta.
// Solo Status muta (Unpaid → Paid); cantidad y montos son inmutables.
type Invoice struct {
	ID        string
	UserID    string
	InvoiceID string
	ProductID string // FK a products.id
	Quantity  int64
	Price     decimal.Decimal
	Amount    decimal.Decimal
	Status    string
	DueDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
