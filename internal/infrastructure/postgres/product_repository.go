package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockbook/internal/domain"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, user_id, product_id, name, category, price, quantity, unit, expiry_date, threshold, status, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. La constraint única (user_id, product_id)
// se traduce a domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.UserID, p.ProductID, p.Name, p.Category, p.Price, p.Quantity,
		p.Unit, p.ExpiryDate, p.Threshold, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByUserAndID obtiene un producto del usuario por su UUID interno.
func (r *ProductRepo) GetByUserAndID(ctx context.Context, userID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 AND id = $2`
	return r.getOne(ctx, query, userID, id)
}

// GetByUserAndCode obtiene un producto del usuario por su código visible.
func (r *ProductRepo) GetByUserAndCode(ctx context.Context, userID, productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 AND product_id = $2`
	return r.getOne(ctx, query, userID, productID)
}

// GetByUserAndCodeForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE)
// para serializar mutaciones concurrentes de stock. Usar solo dentro de una tx.
func (r *ProductRepo) GetByUserAndCodeForUpdate(ctx context.Context, userID, productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 AND product_id = $2 FOR UPDATE`
	return r.getOne(ctx, query, userID, productID)
}

// UpdateStock escribe cantidad y estado derivado juntos. El estado viene
// recalculado por el caller con entity.StatusFor.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, quantity int64, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, status = $3, updated_at = now() WHERE id = $1`,
		id, quantity, status,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// ListByUser lista productos del usuario con búsqueda por nombre (ILIKE) y paginación.
func (r *ProductRepo) ListByUser(ctx context.Context, userID, search string, limit, offset int) ([]*entity.Product, int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE user_id = $1 AND name ILIKE '%' || $2 || '%'`,
		userID, search,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, userID, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// RecomputeStatuses reescribe el estado derivado de todas las filas desfasadas.
// El CASE replica entity.StatusFor; la cláusula WHERE hace la pasada idempotente
// y barata cuando no hay nada que corregir.
func (r *ProductRepo) RecomputeStatuses(ctx context.Context) (int64, error) {
	const derived = `
		CASE
			WHEN quantity = 0 THEN 'Out of Stock'
			WHEN quantity <= threshold THEN 'Low Stock'
			ELSE 'In Stock'
		END`
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET status = `+derived+`, updated_at = now() WHERE status IS DISTINCT FROM `+derived)
	if err != nil {
		return 0, fmt.Errorf("recompute product statuses: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar scanProduct.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.UserID, &p.ProductID, &p.Name, &p.Category, &p.Price, &p.Quantity,
		&p.Unit, &p.ExpiryDate, &p.Threshold, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
