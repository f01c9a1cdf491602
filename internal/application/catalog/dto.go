package catalog

import (
	"time"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	SKU         string           `json:"sku" binding:"required,min=1,max=50"`
	Description string           `json:"description"`
	Category    string           `json:"category" binding:"max=100"`
	Unit        string           `json:"unit" binding:"max=20"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	MinStock    *int             `json:"min_stock"`
	MaxStock    *int             `json:"max_stock"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Unit        *string          `json:"unit" binding:"omitempty,max=20"`
	Price       *decimal.Decimal `json:"price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	MinStock    *int             `json:"min_stock"`
	MaxStock    *int             `json:"max_stock"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	MinStock    int             `json:"min_stock"`
	MaxStock    int             `json:"max_stock"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	Search   string `form:"q"`
	Category string `form:"category"`
	Skip     int    `form:"skip" binding:"min=0"`
	Take     int    `form:"take" binding:"min=0,max=500"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		TaxRate:     p.TaxRate,
		MinStock:    p.MinStock,
		MaxStock:    p.MaxStock,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain Products to ProductResponses
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
