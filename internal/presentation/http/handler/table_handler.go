package handler

import (
	"strconv"

	"github.com/dcamacho/barkeep-api/internal/application/service"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/dto/request"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TableHandler handles table ledger and settlement HTTP requests
type TableHandler struct {
	ledgerService     *service.LedgerService
	settlementService *service.SettlementService
}

// NewTableHandler creates a new table handler
func NewTableHandler(ledgerService *service.LedgerService, settlementService *service.SettlementService) *TableHandler {
	return &TableHandler{
		ledgerService:     ledgerService,
		settlementService: settlementService,
	}
}

func tableNumber(c *gin.Context) (int, bool) {
	table, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		response.BadRequest(c, "Invalid table number")
		return 0, false
	}
	return table, true
}

// ListStatuses returns the status projection for every table. An
// optional "selected" query marks one table as selected in the view.
func (h *TableHandler) ListStatuses(c *gin.Context) {
	selected, _ := strconv.Atoi(c.Query("selected"))
	statuses := h.ledgerService.TableStatuses(c.Request.Context(), selected)
	response.OK(c, "Table statuses retrieved successfully", statuses)
}

// GetOrder returns the table's current order, empty view included
func (h *TableHandler) GetOrder(c *gin.Context) {
	table, ok := tableNumber(c)
	if !ok {
		return
	}

	order, err := h.ledgerService.GetOrder(c.Request.Context(), table)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// AddLine adds one unit of a product to the table's order
func (h *TableHandler) AddLine(c *gin.Context) {
	table, ok := tableNumber(c)
	if !ok {
		return
	}

	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.ledgerService.AddLine(c.Request.Context(), table, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line added successfully", order)
}

// SetLineQuantity replaces a line's quantity; zero removes the line
func (h *TableHandler) SetLineQuantity(c *gin.Context) {
	table, ok := tableNumber(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.SetLineQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.ledgerService.SetLineQuantity(c.Request.Context(), table, productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line updated successfully", order)
}

// RemoveLine removes a product's line from the table's order
func (h *TableHandler) RemoveLine(c *gin.Context) {
	table, ok := tableNumber(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	order, err := h.ledgerService.RemoveLine(c.Request.Context(), table, productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line removed successfully", order)
}

// ClearOrder drops the table's order without settling it
func (h *TableHandler) ClearOrder(c *gin.Context) {
	table, ok := tableNumber(c)
	if !ok {
		return
	}

	if err := h.ledgerService.ClearTable(c.Request.Context(), table); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order cleared successfully", nil)
}

// Settle settles the table's pending order into a recorded sale
func (h *TableHandler) Settle(c *gin.Context) {
	table, ok := tableNumber(c)
	if !ok {
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.settlementService.SettleTable(c.Request.Context(), table, *userID)
	if err != nil {
		// A partially applied settlement still reports how far it got.
		if result != nil && result.SaleRecorded {
			c.JSON(502, response.APIResponse{
				Success: false,
				Message: err.Error(),
				Data:    result,
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Table settled successfully", result)
}

// SettleAll settles every table with a pending order
func (h *TableHandler) SettleAll(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.settlementService.SettleAll(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settlement run completed", result)
}
