package procurement

import (
	"time"

	"github.com/bizledger/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest represents one line of a new purchase order
type PurchaseOrderItemRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal  `json:"unit_price" binding:"required"`
	TaxRate   *decimal.Decimal `json:"tax_rate"`
}

// CreatePurchaseOrderRequest represents a request to create a new purchase order
type CreatePurchaseOrderRequest struct {
	PONumber     string                     `json:"po_number" binding:"required,min=1,max=50"`
	SupplierID   uuid.UUID                  `json:"supplier_id" binding:"required"`
	OrderDate    time.Time                  `json:"order_date" binding:"required"`
	ExpectedDate *time.Time                 `json:"expected_date"`
	Notes        string                     `json:"notes"`
	Items        []PurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseOrderItemResponse represents a purchase order line in API responses
type PurchaseOrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID           uuid.UUID                   `json:"id"`
	PONumber     string                      `json:"po_number"`
	SupplierID   uuid.UUID                   `json:"supplier_id"`
	OrderDate    time.Time                   `json:"order_date"`
	ExpectedDate *time.Time                  `json:"expected_date"`
	Status       string                      `json:"status"`
	Subtotal     decimal.Decimal             `json:"subtotal"`
	TaxAmount    decimal.Decimal             `json:"tax_amount"`
	Total        decimal.Decimal             `json:"total"`
	Notes        string                      `json:"notes"`
	Items        []PurchaseOrderItemResponse `json:"items"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// PurchaseOrderListFilter represents filter options for purchase order lists
type PurchaseOrderListFilter struct {
	Search     string     `form:"q"`
	Status     string     `form:"status" binding:"omitempty,oneof=SENT CONFIRMED RECEIVED CANCELLED"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Skip       int        `form:"skip" binding:"min=0"`
	Take       int        `form:"take" binding:"min=0,max=500"`
}

// ToPurchaseOrderItemResponse converts a domain PurchaseOrderItem to its response
func ToPurchaseOrderItemResponse(i *procurement.PurchaseOrderItem) PurchaseOrderItemResponse {
	return PurchaseOrderItemResponse{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		TaxRate:   i.TaxRate,
		TaxAmount: i.TaxAmount,
		Total:     i.Total,
	}
}

// ToPurchaseOrderResponse converts a domain PurchaseOrder to PurchaseOrderResponse
func ToPurchaseOrderResponse(po *procurement.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(po.Items))
	for i := range po.Items {
		items[i] = ToPurchaseOrderItemResponse(&po.Items[i])
	}
	return PurchaseOrderResponse{
		ID:           po.ID,
		PONumber:     po.PONumber,
		SupplierID:   po.SupplierID,
		OrderDate:    po.OrderDate,
		ExpectedDate: po.ExpectedDate,
		Status:       string(po.Status),
		Subtotal:     po.Subtotal,
		TaxAmount:    po.TaxAmount,
		Total:        po.Total,
		Notes:        po.Notes,
		Items:        items,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	}
}

// ToPurchaseOrderResponses converts a slice of domain PurchaseOrders to responses
func ToPurchaseOrderResponses(orders []procurement.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}
