package reporting

import (
	"context"
	"time"

	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// DashboardUseCase agrega las vistas del dashboard principal a partir del
// ledger crudo y los snapshots de producto. Solo lectura.
type DashboardUseCase struct {
	reports repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reports repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reports: reports}
}

// Home arma el dashboard principal: resumen de ventas/compras, inventario por
// estado y métricas de los últimos 7 días.
func (uc *DashboardUseCase) Home(ctx context.Context, userID string) (*dto.HomeDashboardResponse, error) {
	summary, err := uc.reports.LedgerSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := uc.reports.InventorySummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -7)
	qty7, revenue7, err := uc.reports.SalesTotalsSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	products7, err := uc.reports.ProductsCreatedSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	out := &dto.HomeDashboardResponse{
		SalesOverview: dto.SalesOverview{
			Count:   summary.Sales.Count,
			Revenue: summary.Sales.Amount,
			Cost:    summary.Purchases.Amount,
			Profit:  summary.Sales.Amount.Sub(summary.Purchases.Amount),
		},
		PurchaseOverview: dto.PurchaseOverview{
			Count: summary.Purchases.Count,
			Cost:  summary.Purchases.Amount,
		},
		InventorySummary: dto.InventorySummary{
			InStock:       inv.InStock,
			LowStock:      inv.LowStock,
			OutOfStock:    inv.OutOfStock,
			TotalProducts: inv.TotalProducts,
		},
		InventoryStats: dto.InventoryStats{
			CategoriesCount:        inv.Categories,
			ProductsLast7Days:      products7,
			RevenueLast7Days:       revenue7,
			TopSellingQty7Days:     qty7,
			TopSellingRevenue7Days: revenue7,
			LowStockCount:          inv.LowStock,
			OutOfStockCount:        inv.OutOfStock,
		},
	}
	out.ProductSummary.Categories = inv.Categories
	return out, nil
}

// Graph serie temporal de ventas y compras agrupada por período.
// Rangos válidos: daily, weekly, monthly (default), yearly.
func (uc *DashboardUseCase) Graph(ctx context.Context, userID, rng string) (*dto.GraphResponse, error) {
	series, err := uc.reports.PeriodSeries(ctx, userID, normalizeRange(rng))
	if err != nil {
		return nil, err
	}
	return seriesToGraph(series), nil
}

// Summary resumen rápido ventas/compras.
func (uc *DashboardUseCase) Summary(ctx context.Context, userID string) (*dto.LedgerSummaryResponse, error) {
	summary, err := uc.reports.LedgerSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerSummaryResponse{
		Sales:     dto.TypeSummary{Count: summary.Sales.Count, Amount: summary.Sales.Amount},
		Purchases: dto.TypeSummary{Count: summary.Purchases.Count, Amount: summary.Purchases.Amount},
	}, nil
}

// TopSelling productos con más unidades vendidas.
func (uc *DashboardUseCase) TopSelling(ctx context.Context, userID string, limit int) ([]dto.TopProductResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	items, err := uc.reports.TopSellingProducts(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return topProductsToDTO(items), nil
}

// LowStock productos en o por debajo de su umbral, ordenados por cantidad.
func (uc *DashboardUseCase) LowStock(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	items, err := uc.reports.LowStockProducts(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.FromProduct(p))
	}
	return out, nil
}

// Expiring productos que vencen en los próximos 30 días.
func (uc *DashboardUseCase) Expiring(ctx context.Context, userID string) ([]dto.ProductResponse, error) {
	items, err := uc.reports.ExpiringProducts(ctx, userID, time.Now().AddDate(0, 0, 30))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.FromProduct(p))
	}
	return out, nil
}

// TopStats métricas de cabecera: ingresos, unidades vendidas y productos con stock.
func (uc *DashboardUseCase) TopStats(ctx context.Context, userID string) (*dto.TopStatsResponse, error) {
	summary, err := uc.reports.LedgerSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := uc.reports.InventorySummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.TopStatsResponse{
		Revenue:         summary.Sales.Amount,
		ProductsSold:    summary.Sales.Quantity,
		ProductsInStock: inv.InStock,
	}, nil
}

func normalizeRange(rng string) string {
	switch rng {
	case repository.RangeDaily, repository.RangeWeekly, repository.RangeYearly:
		return rng
	default:
		return repository.RangeMonthly
	}
}

func seriesToGraph(series []repository.PeriodTotals) *dto.GraphResponse {
	out := &dto.GraphResponse{}
	for _, p := range series {
		out.Labels = append(out.Labels, p.Period)
		out.Sales = append(out.Sales, p.Sales)
		out.Purchases = append(out.Purchases, p.Purchases)
	}
	return out
}

func topProductsToDTO(items []repository.TopProduct) []dto.TopProductResponse {
	out := make([]dto.TopProductResponse, 0, len(items))
	for _, t := range items {
		out = append(out, dto.TopProductResponse{
			ProductID: t.ProductID,
			Name:      t.Name,
			TotalSold: t.TotalSold,
			Revenue:   t.Revenue,
		})
	}
	return out
}
