package inventory

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Warehouse represents a physical storage location
type Warehouse struct {
	shared.TenantEntity
	Name     string `gorm:"type:varchar(200);not null"`
	Location string `gorm:"type:varchar(500)"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse with required fields
func NewWarehouse(tenantID uuid.UUID, name, location string) (*Warehouse, error) {
	if err := validateWarehouseName(name); err != nil {
		return nil, err
	}
	if err := validateWarehouseLocation(location); err != nil {
		return nil, err
	}

	return &Warehouse{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		Location:     location,
		IsActive:     true,
	}, nil
}

// Update updates the warehouse's information
func (w *Warehouse) Update(name, location string) error {
	if err := validateWarehouseName(name); err != nil {
		return err
	}
	if err := validateWarehouseLocation(location); err != nil {
		return err
	}

	w.Name = name
	w.Location = location
	w.UpdatedAt = time.Now()

	return nil
}

// Deactivate soft-deletes the warehouse
func (w *Warehouse) Deactivate() {
	w.IsActive = false
	w.UpdatedAt = time.Now()
}

func validateWarehouseName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot exceed 200 characters")
	}
	return nil
}

func validateWarehouseLocation(location string) error {
	if len(location) > 500 {
		return shared.NewDomainError("INVALID_LOCATION", "Location cannot exceed 500 characters")
	}
	return nil
}
