package inventory

import (
	"context"
	"errors"

	"github.com/bizledger/backend/internal/domain/inventory"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InventoryService handles warehouse and stock operations
type InventoryService struct {
	warehouseRepo inventory.WarehouseRepository
	stockRepo     inventory.StockRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(warehouseRepo inventory.WarehouseRepository, stockRepo inventory.StockRepository) *InventoryService {
	return &InventoryService{
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
	}
}

// CreateWarehouse creates a new warehouse
func (s *InventoryService) CreateWarehouse(ctx context.Context, tenantID uuid.UUID, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := inventory.NewWarehouse(tenantID, req.Name, req.Location)
	if err != nil {
		return nil, err
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// ListWarehouses retrieves all warehouses for a tenant
func (s *InventoryService) ListWarehouses(ctx context.Context, tenantID uuid.UUID) ([]WarehouseResponse, int64, error) {
	filter := shared.DefaultFilter()
	filter.Take = 100
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	warehouses, err := s.warehouseRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.warehouseRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToWarehouseResponses(warehouses), total, nil
}

// GetWarehouse retrieves a warehouse by ID
func (s *InventoryService) GetWarehouse(ctx context.Context, tenantID, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByIDForTenant(ctx, tenantID, warehouseID)
	if err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// UpdateWarehouse applies a partial update to a warehouse
func (s *InventoryService) UpdateWarehouse(ctx context.Context, tenantID, warehouseID uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByIDForTenant(ctx, tenantID, warehouseID)
	if err != nil {
		return nil, err
	}

	name := warehouse.Name
	location := warehouse.Location
	if req.Name != nil {
		name = *req.Name
	}
	if req.Location != nil {
		location = *req.Location
	}

	if err := warehouse.Update(name, location); err != nil {
		return nil, err
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// DeleteWarehouse soft-deletes a warehouse
func (s *InventoryService) DeleteWarehouse(ctx context.Context, tenantID, warehouseID uuid.UUID) error {
	warehouse, err := s.warehouseRepo.FindByIDForTenant(ctx, tenantID, warehouseID)
	if err != nil {
		return err
	}

	warehouse.Deactivate()
	return s.warehouseRepo.Save(ctx, warehouse)
}

// CreateStock creates a stock row for a product and warehouse pair
func (s *InventoryService) CreateStock(ctx context.Context, tenantID uuid.UUID, req CreateStockRequest) (*StockResponse, error) {
	existing, err := s.stockRepo.FindByProductAndWarehouse(ctx, tenantID, req.ProductID, req.WarehouseID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Stock row for this product and warehouse already exists")
	}

	stock, err := inventory.NewStock(tenantID, req.ProductID, req.WarehouseID, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}

	response := ToStockResponse(stock)
	return &response, nil
}

// ListStock retrieves stock rows with optional product and warehouse filters
func (s *InventoryService) ListStock(ctx context.Context, tenantID uuid.UUID, filter StockListFilter) ([]StockResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	if filter.ProductID != nil {
		domainFilter.Filters["product_id"] = *filter.ProductID
	}
	if filter.WarehouseID != nil {
		domainFilter.Filters["warehouse_id"] = *filter.WarehouseID
	}

	stocks, err := s.stockRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.stockRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockResponses(stocks), total, nil
}

// UpdateStock overwrites quantities on a stock row
func (s *InventoryService) UpdateStock(ctx context.Context, tenantID, stockID uuid.UUID, req UpdateStockRequest) (*StockResponse, error) {
	stock, err := s.stockRepo.FindByIDForTenant(ctx, tenantID, stockID)
	if err != nil {
		return nil, err
	}

	quantity := stock.Quantity
	reserved := stock.Reserved
	available := stock.Available

	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if req.Reserved != nil {
		reserved = *req.Reserved
	}
	if req.Available != nil {
		available = *req.Available
	}

	if err := stock.SetQuantities(quantity, reserved, available); err != nil {
		return nil, err
	}

	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}

	response := ToStockResponse(stock)
	return &response, nil
}
