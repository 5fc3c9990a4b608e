package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOverview resumen de ventas del dashboard.
type SalesOverview struct {
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
}

// PurchaseOverview resumen de compras del dashboard.
type PurchaseOverview struct {
	Count int64           `json:"count"`
	Cost  decimal.Decimal `json:"cost"`
}

// InventorySummary conteos de inventario por estado derivado.
type InventorySummary struct {
	InStock       int64 `json:"in_stock"`
	LowStock      int64 `json:"low_stock"`
	OutOfStock    int64 `json:"out_of_stock"`
	TotalProducts int64 `json:"total_products"`
}

// InventoryStats métricas de los últimos 7 días para el dashboard.
type InventoryStats struct {
	CategoriesCount        int64           `json:"categories_count"`
	ProductsLast7Days      int64           `json:"products_last_7_days"`
	RevenueLast7Days       decimal.Decimal `json:"revenue_last_7_days"`
	TopSellingQty7Days     int64           `json:"top_selling_qty_7_days"`
	TopSellingRevenue7Days decimal.Decimal `json:"top_selling_revenue_7_days"`
	LowStockCount          int64           `json:"low_stock_count"`
	OutOfStockCount        int64           `json:"out_of_stock_count"`
}

// HomeDashboardResponse respuesta del dashboard principal.
type HomeDashboardResponse struct {
	SalesOverview    SalesOverview    `json:"sales_overview"`
	PurchaseOverview PurchaseOverview `json:"purchase_overview"`
	InventorySummary InventorySummary `json:"inventory_summary"`
	ProductSummary   struct {
		Categories int64 `json:"categories"`
	} `json:"product_summary"`
	InventoryStats InventoryStats `json:"inventory_stats"`
}

// GraphResponse serie temporal sales/purchases para los gráficos.
type GraphResponse struct {
	Labels    []string          `json:"labels"`
	Sales     []decimal.Decimal `json:"sales"`
	Purchases []decimal.Decimal `json:"purchases"`
}

// TypeSummary conteo y monto por tipo de transacción.
type TypeSummary struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// LedgerSummaryResponse resumen rápido ventas/compras.
type LedgerSummaryResponse struct {
	Sales     TypeSummary `json:"sales"`
	Purchases TypeSummary `json:"purchases"`
}

// TopProductResponse producto más vendido.
type TopProductResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	TotalSold int64           `json:"total_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// StatisticsSummaryResponse tarjetas de la vista de estadísticas.
type StatisticsSummaryResponse struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	Profit          decimal.Decimal `json:"profit"`
	ProductsSold    int64           `json:"products_sold"`
	ProductsInStock int64           `json:"products_in_stock"`
}

// TopStatsResponse métricas de cabecera.
type TopStatsResponse struct {
	Revenue         decimal.Decimal `json:"revenue"`
	ProductsSold    int64           `json:"products_sold"`
	ProductsInStock int64           `json:"products_in_stock"`
}

// TransactionResponse entrada del ledger expuesta a reportes.
type TransactionResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}
