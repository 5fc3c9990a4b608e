package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro de inventario.
const (
	TransactionTypePurchase = "PURCHASE"
	TransactionTypeSale     = "SALE"
)

// Transaction es una entrada inmutable del libro de inventario (ledger).
// Se crea una por cada compra o venta exitosa, en la misma transacción SQL que la
// mutación de stock. Nunca se actualiza ni se borra: es la fuente de verdad de los reportes.
// Quantity se guarda siempre positiva; el signo lo da Type.
// Amount = Quantity × precio unitario del producto al momento de la operación.
type Transaction struct {
	ID        string
	UserID    string
	ProductID string // FK a products.id (UUID interno, no el código visible)
	Quantity  int64
	Amount    decimal.Decimal
	Type      string
	CreatedAt time.Time
}
