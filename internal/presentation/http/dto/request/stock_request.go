package request

import "github.com/google/uuid"

// CreateStockEntryRequest represents a restock request
type CreateStockEntryRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// StockEntryFilterRequest represents restock history filter parameters
type StockEntryFilterRequest struct {
	ProductID string `form:"product_id"`
	From      string `form:"from"`
	To        string `form:"to"`
}
