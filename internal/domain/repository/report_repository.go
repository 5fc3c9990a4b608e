package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
)

// Rangos de agrupación temporal para las series de los gráficos.
const (
	RangeDaily   = "daily"
	RangeWeekly  = "weekly"
	RangeMonthly = "monthly"
	RangeYearly  = "yearly"
)

// TypeTotals agregado de transacciones de un mismo tipo.
type TypeTotals struct {
	Count    int64
	Quantity int64
	Amount   decimal.Decimal
}

// LedgerSummary totales de ventas y compras de un usuario, derivados del ledger.
type LedgerSummary struct {
	Sales     TypeTotals
	Purchases TypeTotals
}

// InventorySummary conteos de inventario por estado derivado.
type InventorySummary struct {
	TotalProducts int64
	InStock       int64
	LowStock      int64
	OutOfStock    int64
	Categories    int64
}

// PeriodTotals punto de la serie temporal sales/purchases por período.
type PeriodTotals struct {
	Period    string
	Sales     decimal.Decimal
	Purchases decimal.Decimal
}

// TopProduct producto con mayores ventas acumuladas.
type TopProduct struct {
	ProductID string
	Name      string
	TotalSold int64
	Revenue   decimal.Decimal
}

// InvoiceStats agregados de facturación de un usuario.
type InvoiceStats struct {
	Total            int64
	Recent           int64
	Paid             int64
	Unpaid           int64
	PaidRecentAmount decimal.Decimal
	UnpaidAmount     decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre ledger, productos y facturas.
// Nunca computa nada que no sea derivable del ledger crudo filtrado por tenant.
type ReportRepository interface {
	LedgerSummary(ctx context.Context, userID string) (*LedgerSummary, error)
	InventorySummary(ctx context.Context, userID string) (*InventorySummary, error)
	SalesTotalsSince(ctx context.Context, userID string, since time.Time) (quantity int64, revenue decimal.Decimal, err error)
	ProductsCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error)
	PeriodSeries(ctx context.Context, userID, rng string) ([]PeriodTotals, error)
	TopSellingProducts(ctx context.Context, userID string, limit int) ([]TopProduct, error)
	LowStockProducts(ctx context.Context, userID string) ([]*entity.Product, error)
	ExpiringProducts(ctx context.Context, userID string, before time.Time) ([]*entity.Product, error)
	InvoiceStats(ctx context.Context, userID string, since time.Time) (*InvoiceStats, error)
}
