package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the catalog context
type Product struct {
	shared.TenantEntity
	Name        string          `gorm:"type:varchar(200);not null"`
	SKU         string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_tenant_sku,priority:2"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(100);index"`
	Unit        string          `gorm:"type:varchar(20);not null;default:'pcs'"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"` // GST percentage
	MinStock    int             `gorm:"not null;default:0"`
	MaxStock    int             `gorm:"not null;default:0"`
	IsActive    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with required fields
func NewProduct(tenantID uuid.UUID, name, sku string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		SKU:          strings.ToUpper(sku),
		Unit:         "pcs",
		Price:        price,
		CostPrice:    decimal.Zero,
		TaxRate:      decimal.Zero,
		IsActive:     true,
	}, nil
}

// Update updates the product's descriptive fields
func (p *Product) Update(name, description, category, unit string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if category != "" && len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	if unit != "" && len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}

	p.Name = name
	p.Description = description
	p.Category = category
	if unit != "" {
		p.Unit = unit
	}
	p.UpdatedAt = time.Now()

	return nil
}

// SetPricing sets the product's sale price, cost price and GST rate
func (p *Product) SetPricing(price, costPrice, taxRate decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_COST_PRICE", "Cost price cannot be negative")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be between 0 and 100")
	}

	p.Price = price
	p.CostPrice = costPrice
	p.TaxRate = taxRate
	p.UpdatedAt = time.Now()

	return nil
}

// SetStockBounds sets the reorder thresholds
func (p *Product) SetStockBounds(minStock, maxStock int) error {
	if minStock < 0 || maxStock < 0 {
		return shared.NewDomainError("INVALID_STOCK_BOUNDS", "Stock bounds cannot be negative")
	}

	p.MinStock = minStock
	p.MaxStock = maxStock
	p.UpdatedAt = time.Now()

	return nil
}

// Deactivate soft-deletes the product
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

// ProductRepository manages product persistence
type ProductRepository interface {
	shared.TenantRepository[Product]
	ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error)
}
