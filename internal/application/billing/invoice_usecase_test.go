package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockbook/internal/application/billing"
	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

const testUser = "user-1"

// ──────────────────────────────────────────────────────────────────────────────
// Dobles
// ──────────────────────────────────────────────────────────────────────────────

type stubInvoiceRepo struct {
	invoices      map[string]*entity.Invoice
	statusUpdates int
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

func newStubInvoiceRepo(invoices ...*entity.Invoice) *stubInvoiceRepo {
	r := &stubInvoiceRepo{invoices: map[string]*entity.Invoice{}}
	for _, inv := range invoices {
		r.invoices[inv.ID] = inv
	}
	return r
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

func (r *stubInvoiceRepo) GetByUserAndID(_ context.Context, userID, id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok || inv.UserID != userID {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *stubInvoiceRepo) UpdateStatus(_ context.Context, id, status string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	r.statusUpdates++
	return nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, userID, id string) error {
	inv, ok := r.invoices[id]
	if !ok || inv.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.invoices, id)
	return nil
}

func (r *stubInvoiceRepo) ListByUser(_ context.Context, userID, _ string, _, _ int) ([]*entity.Invoice, int, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func unpaidInvoice(id string) *entity.Invoice {
	now := time.Now()
	return &entity.Invoice{
		ID:        id,
		UserID:    testUser,
		InvoiceID: "INV-1001",
		ProductID: "prod-1",
		Quantity:  2,
		Price:     decimal.NewFromInt(5),
		Amount:    decimal.NewFromInt(10),
		Status:    entity.InvoiceStatusUnpaid,
		DueDate:   now.AddDate(0, 0, entity.InvoiceDueOffsetDays),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkPaid
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkPaid_TransicionUnpaidAPaid(t *testing.T) {
	repo := newStubInvoiceRepo(unpaidInvoice("inv-1"))
	uc := billing.NewInvoiceUseCase(repo, nil)

	inv, err := uc.MarkPaid(context.Background(), testUser, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, 1, repo.statusUpdates)
}

// Repetir MarkPaid sobre una factura ya pagada responde éxito sin reescribir:
// el pago es idempotente, no un error de conflicto.
func TestMarkPaid_Idempotente(t *testing.T) {
	repo := newStubInvoiceRepo(unpaidInvoice("inv-1"))
	uc := billing.NewInvoiceUseCase(repo, nil)

	_, err := uc.MarkPaid(context.Background(), testUser, "inv-1")
	require.NoError(t, err)

	inv, err := uc.MarkPaid(context.Background(), testUser, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, 1, repo.statusUpdates, "la segunda llamada no debe reescribir el estado")
}

func TestMarkPaid_FacturaInexistente(t *testing.T) {
	uc := billing.NewInvoiceUseCase(newStubInvoiceRepo(), nil)
	_, err := uc.MarkPaid(context.Background(), testUser, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkPaid_FacturaDeOtroTenant(t *testing.T) {
	repo := newStubInvoiceRepo(unpaidInvoice("inv-1"))
	uc := billing.NewInvoiceUseCase(repo, nil)

	_, err := uc.MarkPaid(context.Background(), "otro-usuario", "inv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EliminaYNoEncuentraDespues(t *testing.T) {
	repo := newStubInvoiceRepo(unpaidInvoice("inv-1"))
	uc := billing.NewInvoiceUseCase(repo, nil)

	require.NoError(t, uc.Delete(context.Background(), testUser, "inv-1"))

	_, err := uc.Get(context.Background(), testUser, "inv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_FacturaInexistente(t *testing.T) {
	uc := billing.NewInvoiceUseCase(newStubInvoiceRepo(), nil)
	err := uc.Delete(context.Background(), testUser, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
