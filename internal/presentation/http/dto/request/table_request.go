package request

import "github.com/google/uuid"

// AddLineRequest represents adding one unit of a product to a table's order
type AddLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// SetLineQuantityRequest represents replacing a line's quantity.
// Zero or negative removes the line, so the field carries no minimum.
type SetLineQuantityRequest struct {
	Quantity int `json:"quantity"`
}
