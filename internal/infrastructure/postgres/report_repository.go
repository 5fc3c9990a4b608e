package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura. Trabaja directo sobre el
// pool: los reportes nunca participan en transacciones de escritura.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// LedgerSummary totales de ventas y compras derivados del ledger crudo.
func (r *ReportRepo) LedgerSummary(ctx context.Context, userID string) (*repository.LedgerSummary, error) {
	query := `
		SELECT
			count(*) FILTER (WHERE type = $2),
			COALESCE(sum(quantity) FILTER (WHERE type = $2), 0),
			COALESCE(sum(amount) FILTER (WHERE type = $2), 0),
			count(*) FILTER (WHERE type = $3),
			COALESCE(sum(quantity) FILTER (WHERE type = $3), 0),
			COALESCE(sum(amount) FILTER (WHERE type = $3), 0)
		FROM transactions
		WHERE user_id = $1`
	var s repository.LedgerSummary
	err := r.q.QueryRow(ctx, query, userID, entity.TransactionTypeSale, entity.TransactionTypePurchase).Scan(
		&s.Sales.Count, &s.Sales.Quantity, &s.Sales.Amount,
		&s.Purchases.Count, &s.Purchases.Quantity, &s.Purchases.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("ledger summary: %w", err)
	}
	return &s, nil
}

// InventorySummary conteos de productos por estado derivado y categorías distintas.
func (r *ReportRepo) InventorySummary(ctx context.Context, userID string) (*repository.InventorySummary, error) {
	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = $2),
			count(*) FILTER (WHERE status = $3),
			count(*) FILTER (WHERE status = $4),
			count(DISTINCT category)
		FROM products
		WHERE user_id = $1`
	var s repository.InventorySummary
	err := r.q.QueryRow(ctx, query, userID,
		entity.StatusInStock, entity.StatusLowStock, entity.StatusOutOfStock,
	).Scan(&s.TotalProducts, &s.InStock, &s.LowStock, &s.OutOfStock, &s.Categories)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}
	return &s, nil
}

// SalesTotalsSince unidades vendidas e ingreso desde una fecha.
func (r *ReportRepo) SalesTotalsSince(ctx context.Context, userID string, since time.Time) (int64, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(sum(quantity), 0), COALESCE(sum(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = $2 AND created_at >= $3`
	var quantity int64
	var revenue decimal.Decimal
	err := r.q.QueryRow(ctx, query, userID, entity.TransactionTypeSale, since).Scan(&quantity, &revenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales totals since: %w", err)
	}
	return quantity, revenue, nil
}

// ProductsCreatedSince cuenta productos dados de alta desde una fecha.
func (r *ReportRepo) ProductsCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE user_id = $1 AND created_at >= $2`,
		userID, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("products created since: %w", err)
	}
	return n, nil
}

// periodSpec formato de bucket y ventana hacia atrás por rango de agrupación.
var periodSpec = map[string]struct {
	format string
	window time.Duration
}{
	repository.RangeDaily:   {"YYYY-MM-DD", 30 * 24 * time.Hour},
	repository.RangeWeekly:  {"IYYY-IW", 12 * 7 * 24 * time.Hour},
	repository.RangeMonthly: {"YYYY-MM", 365 * 24 * time.Hour},
	repository.RangeYearly:  {"YYYY", 5 * 365 * 24 * time.Hour},
}

// PeriodSeries serie sales/purchases agrupada por período dentro de la ventana
// del rango. Rangos desconocidos caen a monthly.
func (r *ReportRepo) PeriodSeries(ctx context.Context, userID, rng string) ([]repository.PeriodTotals, error) {
	spec, ok := periodSpec[rng]
	if !ok {
		spec = periodSpec[repository.RangeMonthly]
	}
	since := time.Now().Add(-spec.window)

	query := `
		SELECT
			to_char(created_at, $2) AS period,
			COALESCE(sum(amount) FILTER (WHERE type = $4), 0),
			COALESCE(sum(amount) FILTER (WHERE type = $5), 0)
		FROM transactions
		WHERE user_id = $1 AND created_at >= $3
		GROUP BY period
		ORDER BY period`
	rows, err := r.q.Query(ctx, query, userID, spec.format, since,
		entity.TransactionTypeSale, entity.TransactionTypePurchase)
	if err != nil {
		return nil, fmt.Errorf("period series: %w", err)
	}
	defer rows.Close()

	var series []repository.PeriodTotals
	for rows.Next() {
		var p repository.PeriodTotals
		if err := rows.Scan(&p.Period, &p.Sales, &p.Purchases); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// TopSellingProducts productos con más unidades vendidas según el ledger.
func (r *ReportRepo) TopSellingProducts(ctx context.Context, userID string, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT p.product_id, p.name, sum(t.quantity), sum(t.amount)
		FROM transactions t
		JOIN products p ON p.id = t.product_id
		WHERE t.user_id = $1 AND t.type = $2
		GROUP BY p.product_id, p.name
		ORDER BY sum(t.quantity) DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, userID, entity.TransactionTypeSale, limit)
	if err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}
	defer rows.Close()

	var top []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.Name, &t.TotalSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		top = append(top, t)
	}
	return top, rows.Err()
}

// LowStockProducts productos en estado Low Stock u Out of Stock.
func (r *ReportRepo) LowStockProducts(ctx context.Context, userID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1 AND status IN ($2, $3)
		ORDER BY quantity ASC`
	rows, err := r.q.Query(ctx, query, userID, entity.StatusLowStock, entity.StatusOutOfStock)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ExpiringProducts productos con fecha de vencimiento antes del límite.
func (r *ReportRepo) ExpiringProducts(ctx context.Context, userID string, before time.Time) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1 AND expiry_date IS NOT NULL AND expiry_date <= $2
		ORDER BY expiry_date ASC`
	rows, err := r.q.Query(ctx, query, userID, before)
	if err != nil {
		return nil, fmt.Errorf("expiring products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// InvoiceStats agregados de facturación; "recent" cuenta desde since.
func (r *ReportRepo) InvoiceStats(ctx context.Context, userID string, since time.Time) (*repository.InvoiceStats, error) {
	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE created_at >= $2),
			count(*) FILTER (WHERE status = $3),
			count(*) FILTER (WHERE status = $4),
			COALESCE(sum(amount) FILTER (WHERE status = $3 AND updated_at >= $2), 0),
			COALESCE(sum(amount) FILTER (WHERE status = $4), 0)
		FROM invoices
		WHERE user_id = $1`
	var s repository.InvoiceStats
	err := r.q.QueryRow(ctx, query, userID, since,
		entity.InvoiceStatusPaid, entity.InvoiceStatusUnpaid,
	).Scan(&s.Total, &s.Recent, &s.Paid, &s.Unpaid, &s.PaidRecentAmount, &s.UnpaidAmount)
	if err != nil {
		return nil, fmt.Errorf("invoice stats: %w", err)
	}
	return &s, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
