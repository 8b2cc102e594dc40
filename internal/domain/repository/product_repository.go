package repository

import (
	"context"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductFilterParams contains filtering options for listing products
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// ListAvailable returns products with stock > 0 ordered by title,
	// the feed for the sales screen.
	ListAvailable(ctx context.Context) ([]entity.Product, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)
	// DecrementStock subtracts amount from the product's stock without a
	// floor check. Settlement does not re-validate availability; a
	// concurrent session can drive stock negative and that is accepted.
	DecrementStock(ctx context.Context, id uuid.UUID, amount int) error
	IncrementStock(ctx context.Context, id uuid.UUID, amount int) error
}
