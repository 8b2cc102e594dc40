// Package ledger holds the per-table order types. Table orders are
// session-local working state, not shared records: they live in process
// memory backed by a JSON file, never in the database.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// ProductSnapshot captures the catalog state of a product at the moment
// a line was added. Later catalog edits to price or title do not alter
// an existing line; only stock checks re-read the live product.
type ProductSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Price int64     `json:"price"` // cents
	Stock int       `json:"stock"` // stock at add time
}

// CartLine is one product with a quantity on a table order.
// Quantity is always >= 1; a line dropped to zero is removed.
type CartLine struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// LineTotal returns price * quantity in cents.
func (l CartLine) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// TableOrder is the accumulating cart for one table prior to settlement.
type TableOrder struct {
	TableNumber int        `json:"table_number"`
	Lines       []CartLine `json:"items"`
	Total       int64      `json:"total"` // cents
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsEmpty reports whether the order has no lines. An empty order is
// indistinguishable from an absent one for settlement and selection.
func (o *TableOrder) IsEmpty() bool {
	return o == nil || len(o.Lines) == 0
}

// ItemCount returns the summed quantity across all lines.
func (o *TableOrder) ItemCount() int {
	if o == nil {
		return 0
	}
	count := 0
	for _, line := range o.Lines {
		count += line.Quantity
	}
	return count
}

// FindLine returns the index of the line for the given product, or -1.
func (o *TableOrder) FindLine(productID uuid.UUID) int {
	if o == nil {
		return -1
	}
	for i, line := range o.Lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

// RecomputeTotal re-sums the total from the current lines. The full
// re-sum keeps the total exact for any mutation sequence; carts are
// small enough that this never matters.
func (o *TableOrder) RecomputeTotal() {
	var total int64
	for _, line := range o.Lines {
		total += line.LineTotal()
	}
	o.Total = total
}

// Clone returns a deep copy so callers cannot mutate ledger state
// through a returned order.
func (o *TableOrder) Clone() *TableOrder {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Lines = make([]CartLine, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return &cp
}
