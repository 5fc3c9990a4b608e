package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockbook/internal/domain/entity"
)

// CreateProductRequest alta de producto con su compra inicial.
// ExpiryDate es opcional, formato YYYY-MM-DD.
type CreateProductRequest struct {
	Name       string          `json:"name"`
	ProductID  string          `json:"product_id"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	Unit       string          `json:"unit"`
	ExpiryDate string          `json:"expiry_date"`
	Threshold  int64           `json:"threshold"`
}

// RestockRequest compra adicional de un producto existente (por código de producto).
type RestockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// SellRequest venta de un producto (por código de producto).
type SellRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	Unit       string          `json:"unit"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	Threshold  int64           `json:"threshold"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// FromProduct mapea la entidad a su representación HTTP.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		ProductID:  p.ProductID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Quantity:   p.Quantity,
		Unit:       p.Unit,
		ExpiryDate: p.ExpiryDate,
		Threshold:  p.Threshold,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}
