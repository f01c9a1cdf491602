package catalog

import (
	"context"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, tenantID, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	product, err := catalog.NewProduct(tenantID, req.Name, req.SKU, req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" || req.Category != "" || req.Unit != "" {
		if err := product.Update(req.Name, req.Description, req.Category, req.Unit); err != nil {
			return nil, err
		}
	}

	if req.CostPrice != nil || req.TaxRate != nil {
		costPrice := product.CostPrice
		taxRate := product.TaxRate
		if req.CostPrice != nil {
			costPrice = *req.CostPrice
		}
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}
		if err := product.SetPricing(req.Price, costPrice, taxRate); err != nil {
			return nil, err
		}
	}

	if req.MinStock != nil || req.MaxStock != nil {
		minStock := product.MinStock
		maxStock := product.MaxStock
		if req.MinStock != nil {
			minStock = *req.MinStock
		}
		if req.MaxStock != nil {
			maxStock = *req.MaxStock
		}
		if err := product.SetStockBounds(minStock, maxStock); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with search and pagination. Deactivated
// products remain listed.
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	domainFilter.Search = filter.Search
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	products, err := s.productRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil || req.Category != nil || req.Unit != nil {
		name := product.Name
		description := product.Description
		category := product.Category
		unit := product.Unit

		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if req.Category != nil {
			category = *req.Category
		}
		if req.Unit != nil {
			unit = *req.Unit
		}

		if err := product.Update(name, description, category, unit); err != nil {
			return nil, err
		}
	}

	if req.Price != nil || req.CostPrice != nil || req.TaxRate != nil {
		price := product.Price
		costPrice := product.CostPrice
		taxRate := product.TaxRate

		if req.Price != nil {
			price = *req.Price
		}
		if req.CostPrice != nil {
			costPrice = *req.CostPrice
		}
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}

		if err := product.SetPricing(price, costPrice, taxRate); err != nil {
			return nil, err
		}
	}

	if req.MinStock != nil || req.MaxStock != nil {
		minStock := product.MinStock
		maxStock := product.MaxStock

		if req.MinStock != nil {
			minStock = *req.MinStock
		}
		if req.MaxStock != nil {
			maxStock = *req.MaxStock
		}

		if err := product.SetStockBounds(minStock, maxStock); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deactivates a product. The row is kept for historical documents.
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return err
	}

	product.Deactivate()

	return s.productRepo.Save(ctx, product)
}
