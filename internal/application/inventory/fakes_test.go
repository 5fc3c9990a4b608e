package inventory_test

import (
	"context"
	"strings"
	"sync"

	"github.com/tu-usuario/stockbook/internal/application/inventory"
	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los repositorios y el TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido entre los repos fake. Sin rollback: los tests que
// dependen de atomicidad verifican que el caso de uso falla antes de mutar.
type memStore struct {
	mu        sync.Mutex
	products  []*entity.Product
	ledger    []*entity.Transaction
	invoices  []*entity.Invoice
	lastSeq   int64
	createErr error // si no es nil, products.Create devuelve este error
}

func newMemStore() *memStore { return &memStore{} }

type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createErr != nil {
		return r.s.createErr
	}
	for _, existing := range r.s.products {
		if existing.UserID == p.UserID && existing.ProductID == p.ProductID {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.s.products = append(r.s.products, &cp)
	return nil
}

func (r *memProductRepo) GetByUserAndID(_ context.Context, userID, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.UserID == userID && p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByUserAndCode(_ context.Context, userID, code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.findByCode(userID, code), nil
}

func (r *memProductRepo) GetByUserAndCodeForUpdate(_ context.Context, userID, code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.findByCode(userID, code), nil
}

// findByCode requiere el lock tomado.
func (r *memProductRepo) findByCode(userID, code string) *entity.Product {
	for _, p := range r.s.products {
		if p.UserID == userID && p.ProductID == code {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (r *memProductRepo) UpdateStock(_ context.Context, id string, quantity int64, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == id {
			p.Quantity = quantity
			p.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) ListByUser(_ context.Context, userID, search string, limit, offset int) ([]*entity.Product, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []*entity.Product
	for _, p := range r.s.products {
		if p.UserID == userID && strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			cp := *p
			matched = append(matched, &cp)
		}
	}
	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *memProductRepo) RecomputeStatuses(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var updated int64
	for _, p := range r.s.products {
		want := entity.StatusFor(p.Quantity, p.Threshold)
		if p.Status != want {
			p.Status = want
			updated++
		}
	}
	return updated, nil
}

type memTransactionRepo struct{ s *memStore }

var _ repository.TransactionRepository = (*memTransactionRepo)(nil)

func (r *memTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *txn
	r.s.ledger = append(r.s.ledger, &cp)
	return nil
}

func (r *memTransactionRepo) ListByUser(_ context.Context, userID string, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Transaction
	for _, t := range r.s.ledger {
		if t.UserID != userID {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if !filter.From.IsZero() && t.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !t.CreatedAt.Before(filter.To) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

type memInvoiceRepo struct{ s *memStore }

var _ repository.InvoiceRepository = (*memInvoiceRepo)(nil)

func (r *memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.invoices {
		if existing.InvoiceID == inv.InvoiceID {
			return domain.ErrDuplicate
		}
	}
	cp := *inv
	r.s.invoices = append(r.s.invoices, &cp)
	return nil
}

func (r *memInvoiceRepo) GetByUserAndID(_ context.Context, userID, id string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.invoices {
		if inv.UserID == userID && inv.ID == id {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInvoiceRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.invoices {
		if inv.ID == id {
			inv.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memInvoiceRepo) Delete(_ context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, inv := range r.s.invoices {
		if inv.UserID == userID && inv.ID == id {
			r.s.invoices = append(r.s.invoices[:i], r.s.invoices[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memInvoiceRepo) ListByUser(_ context.Context, userID, search string, limit, offset int) ([]*entity.Invoice, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.UserID == userID && strings.Contains(inv.InvoiceID, search) {
			cp := *inv
			matched = append(matched, &cp)
		}
	}
	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

type memSequenceRepo struct{ s *memStore }

var _ repository.SequenceRepository = (*memSequenceRepo)(nil)

func (r *memSequenceRepo) NextInvoiceNumber(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.lastSeq == 0 {
		r.s.lastSeq = entity.InvoiceFirstNumber
	} else {
		r.s.lastSeq++
	}
	return r.s.lastSeq, nil
}

// memTxRunner ejecuta el callback directo sobre los repos en memoria.
type memTxRunner struct{ s *memStore }

var _ inventory.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	ledger repository.TransactionRepository,
	invoices repository.InvoiceRepository,
	sequences repository.SequenceRepository,
) error) error {
	return fn(
		&memProductRepo{s: r.s},
		&memTransactionRepo{s: r.s},
		&memInvoiceRepo{s: r.s},
		&memSequenceRepo{s: r.s},
	)
}

// newTestEngine arma los casos de uso de compra y venta sobre un store limpio.
func newTestEngine() (*memStore, *inventory.PurchaseUseCase, *inventory.SaleUseCase) {
	s := newMemStore()
	runner := &memTxRunner{s: s}
	purchases := inventory.NewPurchaseUseCase(runner, &memProductRepo{s: s})
	sales := inventory.NewSaleUseCase(runner)
	return s, purchases, sales
}
