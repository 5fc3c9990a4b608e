package reporting

import (
	"context"

	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// StatisticsUseCase tarjetas y gráficos de la vista de estadísticas.
// Comparte las mismas consultas de solo lectura que el dashboard.
type StatisticsUseCase struct {
	reports repository.ReportRepository
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(reports repository.ReportRepository) *StatisticsUseCase {
	return &StatisticsUseCase{reports: reports}
}

// Summary tarjetas: ingresos, costos, utilidad, unidades vendidas y productos con stock.
func (uc *StatisticsUseCase) Summary(ctx context.Context, userID string) (*dto.StatisticsSummaryResponse, error) {
	summary, err := uc.reports.LedgerSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := uc.reports.InventorySummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.StatisticsSummaryResponse{
		TotalRevenue:    summary.Sales.Amount,
		TotalCost:       summary.Purchases.Amount,
		Profit:          summary.Sales.Amount.Sub(summary.Purchases.Amount),
		ProductsSold:    summary.Sales.Quantity,
		ProductsInStock: inv.InStock,
	}, nil
}

// Graph serie temporal por período (mismos rangos que el dashboard).
func (uc *StatisticsUseCase) Graph(ctx context.Context, userID, rng string) (*dto.GraphResponse, error) {
	series, err := uc.reports.PeriodSeries(ctx, userID, normalizeRange(rng))
	if err != nil {
		return nil, err
	}
	return seriesToGraph(series), nil
}

// TopProducts los 6 productos más vendidos.
func (uc *StatisticsUseCase) TopProducts(ctx context.Context, userID string) ([]dto.TopProductResponse, error) {
	items, err := uc.reports.TopSellingProducts(ctx, userID, 6)
	if err != nil {
		return nil, err
	}
	return topProductsToDTO(items), nil
}
