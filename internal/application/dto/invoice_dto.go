package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
)

// InvoiceResponse representación HTTP de una factura.
type InvoiceResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	DueDate   time.Time       `json:"due_date"`
	CreatedAt time.Time       `json:"created_at"`
}

// FromInvoice mapea la entidad a su representación HTTP.
func FromInvoice(inv *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		InvoiceID: inv.InvoiceID,
		ProductID: inv.ProductID,
		Quantity:  inv.Quantity,
		Price:     inv.Price,
		Amount:    inv.Amount,
		Status:    inv.Status,
		DueDate:   inv.DueDate,
		CreatedAt: inv.CreatedAt,
	}
}

// InvoiceListResponse listado paginado de facturas.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Page     PageResponse      `json:"page"`
}

// InvoiceStatsResponse tarjetas de resumen de facturación.
type InvoiceStatsResponse struct {
	TotalInvoices      int64           `json:"total_invoices"`
	RecentTransactions int64           `json:"recent_transactions"`
	ProcessedInvoices  int64           `json:"processed_invoices"`
	PaidLast7Days      decimal.Decimal `json:"paid_last_7_days_amount"`
	UnpaidAmount       decimal.Decimal `json:"unpaid_amount"`
}
