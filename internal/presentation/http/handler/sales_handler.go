package handler

import (
	"time"

	"github.com/dcamacho/barkeep-api/internal/application/service"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SalesHandler handles sales history and reporting HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// day resolves the "date" query, defaulting to today.
func (h *SalesHandler) day(c *gin.Context) (time.Time, bool) {
	value := c.Query("date")
	if value == "" {
		return time.Now(), true
	}
	day, err := h.salesService.ParseDay(value)
	if err != nil {
		response.Error(c, err)
		return time.Time{}, false
	}
	return day, true
}

// List returns the sales recorded on a day, newest first
func (h *SalesHandler) List(c *gin.Context) {
	day, ok := h.day(c)
	if !ok {
		return
	}

	sales, err := h.salesService.ListByDay(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales retrieved successfully", sales)
}

// Report returns the aggregated daily report
func (h *SalesHandler) Report(c *gin.Context) {
	day, ok := h.day(c)
	if !ok {
		return
	}

	report, err := h.salesService.ReportForDay(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales report retrieved successfully", report)
}

// Get returns one sale with its items
func (h *SalesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.salesService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}
