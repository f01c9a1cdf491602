package inventory

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Stock tracks the quantity of a product held in a warehouse. All three
// quantity columns are stored and edited directly; the available column
// is not derived on write.
type Stock struct {
	shared.TenantEntity
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_stock_product_warehouse,priority:2"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_stock_product_warehouse,priority:3"`
	Quantity    int       `gorm:"not null;default:0"`
	Reserved    int       `gorm:"not null;default:0"`
	Available   int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Stock) TableName() string {
	return "stocks"
}

// NewStock creates a stock record for a product and warehouse pair
func NewStock(tenantID, productID, warehouseID uuid.UUID, quantity int) (*Stock, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID is required")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	return &Stock{
		TenantEntity: shared.NewTenantEntity(tenantID),
		ProductID:    productID,
		WarehouseID:  warehouseID,
		Quantity:     quantity,
		Available:    quantity,
	}, nil
}

// SetQuantities overwrites the on-hand, reserved and available
// quantities. Stock levels are adjusted directly rather than through
// movements.
func (s *Stock) SetQuantities(quantity, reserved, available int) error {
	if quantity < 0 || reserved < 0 || available < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Stock quantities cannot be negative")
	}

	s.Quantity = quantity
	s.Reserved = reserved
	s.Available = available
	s.UpdatedAt = time.Now()

	return nil
}
