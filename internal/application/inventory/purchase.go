package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// PurchaseUseCase registra entradas de stock: alta de producto con su compra
// inicial y reposiciones de productos existentes. Toda entrada exitosa escribe
// la mutación de stock y su transacción PURCHASE del ledger en la misma tx.
type PurchaseUseCase struct {
	txRunner TxRunner
	products repository.ProductRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner, products repository.ProductRepository) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, products: products}
}

// PurchaseSpec entrada normalizada para crear un producto con su compra inicial.
// Category debe venir ya canónica (ResolveCategory); la importación masiva
// resuelve con fallback a Other, el alta individual rechaza las desconocidas.
type PurchaseSpec struct {
	ProductID  string
	Name       string
	Category   string
	Price      decimal.Decimal
	Quantity   int64
	Unit       string
	ExpiryDate *time.Time
	Threshold  int64
}

// CreatePurchase da de alta un producto con su compra inicial.
// Rechaza categorías fuera del catálogo (a diferencia de la importación masiva,
// que las degrada a Other). Devuelve ErrDuplicate si el código ya existe para el usuario.
func (uc *PurchaseUseCase) CreatePurchase(ctx context.Context, userID string, in dto.CreateProductRequest) (*entity.Product, error) {
	if userID == "" || in.Name == "" || in.ProductID == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Threshold < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, ok := entity.ResolveCategory(in.Category)
	if !ok {
		return nil, domain.ErrInvalidCategory
	}
	spec := PurchaseSpec{
		ProductID:  in.ProductID,
		Name:       in.Name,
		Category:   category,
		Price:      in.Price,
		Quantity:   in.Quantity,
		Unit:       in.Unit,
		ExpiryDate: ParseExpiry(in.ExpiryDate),
		Threshold:  in.Threshold,
	}
	return uc.Apply(ctx, userID, spec)
}

// Apply crea el producto y su entrada PURCHASE del ledger como unidad atómica.
// Lo usan el alta individual y cada fila de la importación masiva.
func (uc *PurchaseUseCase) Apply(ctx context.Context, userID string, spec PurchaseSpec) (*entity.Product, error) {
	var created *entity.Product
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		ledger repository.TransactionRepository,
		_ repository.InvoiceRepository,
		_ repository.SequenceRepository,
	) error {
		now := time.Now()
		p := &entity.Product{
			ID:         uuid.New().String(),
			UserID:     userID,
			ProductID:  spec.ProductID,
			Name:       spec.Name,
			Category:   spec.Category,
			Price:      spec.Price,
			Quantity:   spec.Quantity,
			Unit:       spec.Unit,
			ExpiryDate: spec.ExpiryDate,
			Threshold:  spec.Threshold,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		p.RecomputeStatus()
		if err := products.Create(ctx, p); err != nil {
			return err
		}
		txn := &entity.Transaction{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: p.ID,
			Quantity:  spec.Quantity,
			Amount:    decimal.NewFromInt(spec.Quantity).Mul(spec.Price),
			Type:      entity.TransactionTypePurchase,
			CreatedAt: now,
		}
		if err := ledger.Create(ctx, txn); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Restock registra una compra adicional de un producto existente: bloquea la
// fila, incrementa la cantidad, recalcula el estado y asienta la transacción
// PURCHASE al precio unitario vigente.
func (uc *PurchaseUseCase) Restock(ctx context.Context, userID, productCode string, quantity int64) (*entity.Product, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		ledger repository.TransactionRepository,
		_ repository.InvoiceRepository,
		_ repository.SequenceRepository,
	) error {
		p, err := products.GetByUserAndCodeForUpdate(ctx, userID, productCode)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		p.Quantity += quantity
		p.RecomputeStatus()
		if err := products.UpdateStock(ctx, p.ID, p.Quantity, p.Status); err != nil {
			return err
		}
		txn := &entity.Transaction{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: p.ID,
			Quantity:  quantity,
			Amount:    decimal.NewFromInt(quantity).Mul(p.Price),
			Type:      entity.TransactionTypePurchase,
			CreatedAt: time.Now(),
		}
		if err := ledger.Create(ctx, txn); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CurrentStock devuelve el snapshot actual del producto del usuario.
func (uc *PurchaseUseCase) CurrentStock(ctx context.Context, userID, productCode string) (*entity.Product, error) {
	p, err := uc.products.GetByUserAndCode(ctx, userID, productCode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List lista los productos del usuario con búsqueda por nombre y paginación.
func (uc *PurchaseUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	items, total, err := uc.products.ListByUser(ctx, userID, page.Search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(items)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, p := range items {
		out.Products = append(out.Products, dto.FromProduct(p))
	}
	return out, nil
}
