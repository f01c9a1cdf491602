package handler

import (
	inventoryapp "github.com/bizledger/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles warehouse and stock endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// CreateWarehouse godoc
// @Summary      Create a new warehouse
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.CreateWarehouseRequest true "Warehouse creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Security     BearerAuth
// @Router       /warehouses [post]
func (h *InventoryHandler) CreateWarehouse(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	warehouse, err := h.inventoryService.CreateWarehouse(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, warehouse)
}

// ListWarehouses godoc
// @Summary      List warehouses
// @Tags         inventory
// @Produce      json
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /warehouses [get]
func (h *InventoryHandler) ListWarehouses(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	warehouses, total, err := h.inventoryService.ListWarehouses(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, warehouses, total, 0, len(warehouses))
}

// GetWarehouse godoc
// @Summary      Get a warehouse by ID
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /warehouses/{id} [get]
func (h *InventoryHandler) GetWarehouse(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	warehouse, err := h.inventoryService.GetWarehouse(c.Request.Context(), tenantID, warehouseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// UpdateWarehouse godoc
// @Summary      Update a warehouse
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Param        request body inventoryapp.UpdateWarehouseRequest true "Warehouse update request"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /warehouses/{id} [put]
func (h *InventoryHandler) UpdateWarehouse(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	var req inventoryapp.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	warehouse, err := h.inventoryService.UpdateWarehouse(c.Request.Context(), tenantID, warehouseID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// DeleteWarehouse godoc
// @Summary      Deactivate a warehouse
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /warehouses/{id} [delete]
func (h *InventoryHandler) DeleteWarehouse(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	if err := h.inventoryService.DeleteWarehouse(c.Request.Context(), tenantID, warehouseID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateStock godoc
// @Summary      Create a stock record for a product in a warehouse
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.CreateStockRequest true "Stock creation request"
// @Success      201 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /stock [post]
func (h *InventoryHandler) CreateStock(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	stock, err := h.inventoryService.CreateStock(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, stock)
}

// ListStock godoc
// @Summary      List stock records
// @Tags         inventory
// @Produce      json
// @Param        product_id query string false "Filter by product" format(uuid)
// @Param        warehouse_id query string false "Filter by warehouse" format(uuid)
// @Param        skip query int false "Rows to skip" default(0)
// @Param        take query int false "Rows to return" default(20) maximum(500)
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /stock [get]
func (h *InventoryHandler) ListStock(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter inventoryapp.StockListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	stocks, total, err := h.inventoryService.ListStock(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, stocks, total, filter.Skip, filter.Take)
}

// UpdateStock godoc
// @Summary      Adjust a stock record's quantity
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Stock ID" format(uuid)
// @Param        request body inventoryapp.UpdateStockRequest true "Stock update request"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /stock/{id} [put]
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock ID format")
		return
	}

	var req inventoryapp.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	stock, err := h.inventoryService.UpdateStock(c.Request.Context(), tenantID, stockID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stock)
}
