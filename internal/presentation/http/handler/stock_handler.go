package handler

import (
	"time"

	"github.com/dcamacho/barkeep-api/internal/application/service"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/dto/request"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StockHandler handles restock HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func stockFilterParams(c *gin.Context) (*repository.StockEntryFilterParams, bool) {
	var filter request.StockEntryFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return nil, false
	}

	params := &repository.StockEntryFilterParams{}
	if filter.ProductID != "" {
		productID, err := uuid.Parse(filter.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return nil, false
		}
		params.ProductID = &productID
	}
	if filter.From != "" {
		from, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			response.BadRequest(c, "From date must be in YYYY-MM-DD format")
			return nil, false
		}
		params.From = &from
	}
	if filter.To != "" {
		to, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			response.BadRequest(c, "To date must be in YYYY-MM-DD format")
			return nil, false
		}
		params.To = &to
	}
	return params, true
}

// List returns restock history, optionally filtered
func (h *StockHandler) List(c *gin.Context) {
	params, ok := stockFilterParams(c)
	if !ok {
		return
	}

	entries, err := h.stockService.ListEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock entries retrieved successfully", entries)
}

// Totals returns per-product received totals for the filtered history
func (h *StockHandler) Totals(c *gin.Context) {
	params, ok := stockFilterParams(c)
	if !ok {
		return
	}

	totals, err := h.stockService.ReceivedTotals(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock totals retrieved successfully", totals)
}

// Create records a restock
func (h *StockHandler) Create(c *gin.Context) {
	var req request.CreateStockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.stockService.Restock(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Stock entry recorded successfully", entry)
}
