package repository

import (
	"context"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	domainRepo "github.com/dcamacho/barkeep-api/internal/domain/repository"
	"gorm.io/gorm"
)

type stockEntryRepository struct {
	db *gorm.DB
}

// NewStockEntryRepository creates a new stock entry repository
func NewStockEntryRepository(db *gorm.DB) domainRepo.StockEntryRepository {
	return &stockEntryRepository{db: db}
}

func (r *stockEntryRepository) Create(ctx context.Context, entry *entity.StockEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *stockEntryRepository) List(ctx context.Context, params *domainRepo.StockEntryFilterParams) ([]entity.StockEntry, error) {
	var entries []entity.StockEntry

	query := r.db.WithContext(ctx).Model(&entity.StockEntry{})

	if params != nil {
		if params.ProductID != nil {
			query = query.Where("product_id = ?", *params.ProductID)
		}
		if params.From != nil {
			query = query.Where("created_at >= ?", *params.From)
		}
		if params.To != nil {
			query = query.Where("created_at < ?", *params.To)
		}
	}

	err := query.
		Preload("Product").
		Order("created_at DESC").
		Find(&entries).Error

	return entries, err
}
