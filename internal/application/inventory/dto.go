package inventory

import (
	"time"

	"github.com/bizledger/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// CreateWarehouseRequest represents a request to create a new warehouse
type CreateWarehouseRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Location string `json:"location" binding:"max=500"`
}

// UpdateWarehouseRequest represents a partial warehouse update
type UpdateWarehouseRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Location *string `json:"location" binding:"omitempty,max=500"`
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStockRequest represents a request to create a stock row
type CreateStockRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"min=0"`
}

// UpdateStockRequest represents a request to overwrite stock quantities
type UpdateStockRequest struct {
	Quantity  *int `json:"quantity" binding:"omitempty,min=0"`
	Reserved  *int `json:"reserved" binding:"omitempty,min=0"`
	Available *int `json:"available" binding:"omitempty,min=0"`
}

// StockResponse represents a stock row in API responses
type StockResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Quantity    int       `json:"quantity"`
	Reserved    int       `json:"reserved"`
	Available   int       `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockListFilter represents filter options for stock lists
type StockListFilter struct {
	ProductID   *uuid.UUID `form:"product_id"`
	WarehouseID *uuid.UUID `form:"warehouse_id"`
	Skip        int        `form:"skip" binding:"min=0"`
	Take        int        `form:"take" binding:"min=0,max=500"`
}

// ToWarehouseResponse converts a domain Warehouse to WarehouseResponse
func ToWarehouseResponse(w *inventory.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Location:  w.Location,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToWarehouseResponses converts a slice of domain Warehouses to WarehouseResponses
func ToWarehouseResponses(warehouses []inventory.Warehouse) []WarehouseResponse {
	responses := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		responses[i] = ToWarehouseResponse(&warehouses[i])
	}
	return responses
}

// ToStockResponse converts a domain Stock to StockResponse
func ToStockResponse(s *inventory.Stock) StockResponse {
	return StockResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		Reserved:    s.Reserved,
		Available:   s.Available,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToStockResponses converts a slice of domain Stocks to StockResponses
func ToStockResponses(stocks []inventory.Stock) []StockResponse {
	responses := make([]StockResponse, len(stocks))
	for i := range stocks {
		responses[i] = ToStockResponse(&stocks[i])
	}
	return responses
}
