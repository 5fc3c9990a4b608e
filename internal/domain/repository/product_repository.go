package repository

import (
	"context"

	"github.com/tu-usuario/stockbook/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Toda consulta lleva el userID del tenant: no existe acceso cross-tenant.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByUserAndID(ctx context.Context, userID, id string) (*entity.Product, error)
	GetByUserAndCode(ctx context.Context, userID, productID string) (*entity.Product, error)
	// GetByUserAndCodeForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// mutaciones concurrentes del mismo producto. Usar solo dentro de una tx.
	GetByUserAndCodeForUpdate(ctx context.Context, userID, productID string) (*entity.Product, error)
	// UpdateStock escribe cantidad y estado derivado juntos; el estado debe venir
	// recalculado con entity.StatusFor por el caller (invariante de derivación).
	UpdateStock(ctx context.Context, id string, quantity int64, status string) error
	ListByUser(ctx context.Context, userID, search string, limit, offset int) ([]*entity.Product, int, error)
	// RecomputeStatuses reescribe el estado derivado de todos los productos cuyo
	// valor persistido haya quedado desfasado. Idempotente; lo usa el barrido periódico.
	RecomputeStatuses(ctx context.Context) (int64, error)
}
