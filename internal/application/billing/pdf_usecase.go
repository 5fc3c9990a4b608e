package billing

import (
	"context"

	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// InvoicePDFGenerator puerto de renderizado: recibe la factura con sus campos
// ya calculados y el producto referido, devuelve los bytes del PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, product *entity.Product) ([]byte, error)
}

// PDFUseCase arma los datos y delega el renderizado de la factura.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	products  repository.ProductRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoices repository.InvoiceRepository, products repository.ProductRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, products: products, generator: generator}
}

// GenerateInvoicePDF devuelve el PDF de la factura y su nombre de archivo sugerido.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, userID, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoices.GetByUserAndID(ctx, userID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	product, err := uc.products.GetByUserAndID(ctx, userID, inv.ProductID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateInvoicePDF(ctx, inv, product)
	if err != nil {
		return nil, "", err
	}
	return pdf, inv.InvoiceID + ".pdf", nil
}
