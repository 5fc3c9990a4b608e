package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/application/inventory"
	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
)

const testUser = "user-1"

func seedProduct(t *testing.T, purchases *inventory.PurchaseUseCase, code string, quantity, threshold int64, price string) *entity.Product {
	t.Helper()
	p, err := purchases.CreatePurchase(context.Background(), testUser, dto.CreateProductRequest{
		Name:      "Producto " + code,
		ProductID: code,
		Category:  "Grocery",
		Price:     decimal.RequireFromString(price),
		Quantity:  quantity,
		Unit:      "pcs",
		Threshold: threshold,
	})
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

// Una venta exitosa decrementa el stock, asienta SALE en el ledger y emite la
// factura con monto = cantidad × precio unitario vigente.
func TestSell_DecrementaStockYEmiteFactura(t *testing.T) {
	s, purchases, sales := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 10, 2, "3.50")

	inv, err := sales.Sell(context.Background(), testUser, "SKU-1", 4)
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", inv.InvoiceID)
	assert.Equal(t, entity.InvoiceStatusUnpaid, inv.Status)
	assert.True(t, inv.Amount.Equal(decimal.RequireFromString("14.00")),
		"monto de factura debe ser cantidad × precio: %s", inv.Amount)
	assert.Equal(t, inv.CreatedAt.AddDate(0, 0, 7), inv.DueDate,
		"la factura vence a los 7 días de su emisión")

	p, err := purchases.CurrentStock(context.Background(), testUser, "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Quantity)
	assert.Equal(t, entity.StatusInStock, p.Status)

	// Ledger: una PURCHASE inicial y una SALE
	require.Len(t, s.ledger, 2)
	sale := s.ledger[1]
	assert.Equal(t, entity.TransactionTypeSale, sale.Type)
	assert.Equal(t, int64(4), sale.Quantity)
	assert.True(t, sale.Amount.Equal(inv.Amount), "ledger y factura deben compartir monto")
}

// Vender más de lo disponible falla sin mutar stock, ledger ni facturas.
func TestSell_StockInsuficiente_NoMutaNada(t *testing.T) {
	s, purchases, sales := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 3, 1, "2.00")

	_, err := sales.Sell(context.Background(), testUser, "SKU-1", 5)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, err := purchases.CurrentStock(context.Background(), testUser, "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Quantity, "el stock no debe cambiar en una venta rechazada")
	assert.Len(t, s.ledger, 1, "solo debe existir la PURCHASE inicial")
	assert.Empty(t, s.invoices, "no debe emitirse factura")
}

// Vender exactamente el stock disponible deja el producto en Out of Stock.
func TestSell_VaciarStock_EstadoOutOfStock(t *testing.T) {
	_, purchases, sales := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 5, 2, "1.00")

	_, err := sales.Sell(context.Background(), testUser, "SKU-1", 5)
	require.NoError(t, err)

	p, err := purchases.CurrentStock(context.Background(), testUser, "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Quantity)
	assert.Equal(t, entity.StatusOutOfStock, p.Status)
}

// Caer al umbral (sin llegar a cero) deja el producto en Low Stock.
func TestSell_CaerAlUmbral_EstadoLowStock(t *testing.T) {
	_, purchases, sales := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 10, 3, "1.00")

	_, err := sales.Sell(context.Background(), testUser, "SKU-1", 7)
	require.NoError(t, err)

	p, err := purchases.CurrentStock(context.Background(), testUser, "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusLowStock, p.Status)
}

// Cantidades no positivas se rechazan antes de tocar nada.
func TestSell_CantidadNoPositiva(t *testing.T) {
	_, purchases, sales := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 5, 1, "1.00")

	for _, qty := range []int64{0, -3} {
		_, err := sales.Sell(context.Background(), testUser, "SKU-1", qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d", qty)
	}
}

// Producto inexistente → ErrNotFound.
func TestSell_ProductoInexistente(t *testing.T) {
	_, _, sales := newTestEngine()
	_, err := sales.Sell(context.Background(), testUser, "NO-EXISTE", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Los consecutivos de factura son estrictamente crecientes: INV-1001, INV-1002, ...
func TestSell_ConsecutivosEstrictamenteCrecientes(t *testing.T) {
	_, purchases, sales := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 100, 1, "1.00")

	var seen []string
	for i := 0; i < 3; i++ {
		inv, err := sales.Sell(context.Background(), testUser, "SKU-1", 1)
		require.NoError(t, err)
		seen = append(seen, inv.InvoiceID)
	}
	assert.Equal(t, []string{"INV-1001", "INV-1002", "INV-1003"}, seen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

// El alta con código repetido para el mismo usuario devuelve ErrDuplicate.
func TestCreatePurchase_CodigoDuplicado(t *testing.T) {
	_, purchases, _ := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 5, 1, "1.00")

	_, err := purchases.CreatePurchase(context.Background(), testUser, dto.CreateProductRequest{
		Name:      "Otro",
		ProductID: "SKU-1",
		Category:  "Grocery",
		Price:     decimal.NewFromInt(2),
		Quantity:  1,
		Unit:      "pcs",
		Threshold: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El alta individual rechaza categorías fuera del catálogo.
func TestCreatePurchase_CategoriaDesconocida(t *testing.T) {
	_, purchases, _ := newTestEngine()
	_, err := purchases.CreatePurchase(context.Background(), testUser, dto.CreateProductRequest{
		Name:      "Producto",
		ProductID: "SKU-X",
		Category:  "NoExiste",
		Price:     decimal.NewFromInt(1),
		Quantity:  1,
		Unit:      "pcs",
		Threshold: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

// El alta con cantidad cero es válida y nace Out of Stock.
func TestCreatePurchase_CantidadCero(t *testing.T) {
	_, purchases, _ := newTestEngine()
	p := seedProduct(t, purchases, "SKU-1", 0, 2, "1.00")
	assert.Equal(t, entity.StatusOutOfStock, p.Status)
}

// Restock incrementa el stock, recalcula el estado y asienta PURCHASE al precio vigente.
func TestRestock_IncrementaYAsientaCompra(t *testing.T) {
	s, purchases, _ := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 1, 2, "4.00")

	p, err := purchases.Restock(context.Background(), testUser, "SKU-1", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Quantity)
	assert.Equal(t, entity.StatusInStock, p.Status)

	require.Len(t, s.ledger, 2)
	txn := s.ledger[1]
	assert.Equal(t, entity.TransactionTypePurchase, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("36.00")),
		"la compra se asienta al precio unitario vigente")
}

func TestRestock_CantidadNoPositiva(t *testing.T) {
	_, purchases, _ := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 1, 1, "1.00")

	_, err := purchases.Restock(context.Background(), testUser, "SKU-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// Los productos de un usuario no son visibles para otro tenant.
func TestSell_AislamientoPorTenant(t *testing.T) {
	_, purchases, sales := newTestEngine()
	seedProduct(t, purchases, "SKU-1", 10, 1, "1.00")

	_, err := sales.Sell(context.Background(), "otro-usuario", "SKU-1", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
