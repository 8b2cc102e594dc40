package repository

import (
	"context"
	"time"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/google/uuid"
)

// StockEntryFilterParams contains filtering options for listing stock entries
type StockEntryFilterParams struct {
	ProductID *uuid.UUID
	From      *time.Time
	To        *time.Time
}

// StockEntryRepository defines the interface for restock history access
type StockEntryRepository interface {
	Create(ctx context.Context, entry *entity.StockEntry) error
	// List returns entries newest first with the product preloaded.
	List(ctx context.Context, params *StockEntryFilterParams) ([]entity.StockEntry, error)
}
