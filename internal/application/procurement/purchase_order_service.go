package procurement

import (
	"context"

	"github.com/bizledger/backend/internal/domain/procurement"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo         procurement.PurchaseOrderRepository
	strictTransitions bool
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(orderRepo procurement.PurchaseOrderRepository, strictTransitions bool) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:         orderRepo,
		strictTransitions: strictTransitions,
	}
}

// Create creates a new purchase order with computed totals
func (s *PurchaseOrderService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	items := make([]procurement.PurchaseOrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		taxRate := decimal.Zero
		if itemReq.TaxRate != nil {
			taxRate = *itemReq.TaxRate
		}

		item, err := procurement.NewPurchaseOrderItem(itemReq.ProductID, itemReq.Quantity, itemReq.UnitPrice, taxRate)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	order, err := procurement.NewPurchaseOrder(tenantID, req.SupplierID, req.PONumber, req.OrderDate, req.ExpectedDate, items, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with search and pagination
func (s *PurchaseOrderService) List(ctx context.Context, tenantID uuid.UUID, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Take = 100
	domainFilter.Skip = filter.Skip
	if filter.Take > 0 {
		domainFilter.Take = filter.Take
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}

	orders, err := s.orderRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderResponses(orders), total, nil
}

// Confirm transitions a purchase order to CONFIRMED
func (s *PurchaseOrderService) Confirm(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Confirm(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Receive transitions a purchase order to RECEIVED. In strict mode the
// order must be confirmed first; otherwise receiving from SENT is allowed.
func (s *PurchaseOrderService) Receive(ctx context.Context, tenantID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if s.strictTransitions && order.Status != procurement.PurchaseOrderStatusReceived {
		if !order.Status.CanTransitionTo(procurement.PurchaseOrderStatusReceived) {
			return nil, shared.NewDomainError("INVALID_STATUS_TRANSITION", "Order cannot be received from its current status")
		}
	}

	if err := order.Receive(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Delete removes a purchase order and its items
func (s *PurchaseOrderService) Delete(ctx context.Context, tenantID, orderID uuid.UUID) error {
	if _, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID); err != nil {
		return err
	}

	return s.orderRepo.DeleteForTenant(ctx, tenantID, orderID)
}
