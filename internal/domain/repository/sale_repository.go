package repository

import (
	"context"
	"time"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/google/uuid"
)

// SaleRepository defines the interface for sale data access.
// Sales are append-only; there is no update or delete path.
type SaleRepository interface {
	// Create inserts the sale and its items in one transaction.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// ListByDateRange returns sales created in [from, to), newest first,
	// with items preloaded.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error)
}
