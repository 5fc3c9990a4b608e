package billing

import (
	"context"
	"time"

	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// InvoiceUseCase operaciones sobre facturas ya emitidas. La emisión vive en el
// caso de uso de ventas; aquí solo lectura, borrado y la transición Unpaid → Paid.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	reports  repository.ReportRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, reports repository.ReportRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, reports: reports}
}

// MarkPaid marca la factura como pagada. Es idempotente: repetir la llamada
// sobre una factura ya pagada responde éxito y el estado queda Paid.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, userID, invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoices.GetByUserAndID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InvoiceStatusPaid {
		if err := uc.invoices.UpdateStatus(ctx, inv.ID, entity.InvoiceStatusPaid); err != nil {
			return nil, err
		}
		inv.Status = entity.InvoiceStatusPaid
		inv.UpdatedAt = time.Now()
	}
	return inv, nil
}

// Get devuelve una factura del usuario.
func (uc *InvoiceUseCase) Get(ctx context.Context, userID, invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoices.GetByUserAndID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// Delete elimina una factura del usuario.
func (uc *InvoiceUseCase) Delete(ctx context.Context, userID, invoiceID string) error {
	inv, err := uc.invoices.GetByUserAndID(ctx, userID, invoiceID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoices.Delete(ctx, userID, inv.ID)
}

// List lista las facturas del usuario con búsqueda por consecutivo y paginación.
func (uc *InvoiceUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	items, total, err := uc.invoices.ListByUser(ctx, userID, page.Search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{
		Invoices: make([]dto.InvoiceResponse, 0, len(items)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, inv := range items {
		out.Invoices = append(out.Invoices, dto.FromInvoice(inv))
	}
	return out, nil
}

// Stats tarjetas de resumen: totales por estado y montos de los últimos 7 días.
func (uc *InvoiceUseCase) Stats(ctx context.Context, userID string) (*dto.InvoiceStatsResponse, error) {
	since := time.Now().AddDate(0, 0, -7)
	stats, err := uc.reports.InvoiceStats(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceStatsResponse{
		TotalInvoices:      stats.Total,
		RecentTransactions: stats.Recent,
		ProcessedInvoices:  stats.Paid,
		PaidLast7Days:      stats.PaidRecentAmount,
		UnpaidAmount:       stats.UnpaidAmount,
	}, nil
}
