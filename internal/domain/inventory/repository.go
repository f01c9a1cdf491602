package inventory

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WarehouseRepository manages warehouse persistence
type WarehouseRepository interface {
	shared.TenantRepository[Warehouse]
}

// StockRepository manages stock persistence
type StockRepository interface {
	shared.TenantRepository[Stock]
	FindByProductAndWarehouse(ctx context.Context, tenantID, productID, warehouseID uuid.UUID) (*Stock, error)
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]Stock, error)
}
