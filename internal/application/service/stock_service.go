package service

import (
	"context"
	"log"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/google/uuid"
)

// StockService records restocks. Each restock increments the product's
// stock and appends a stock entry; settlements decrement stock without
// writing entries, so the entry list is a pure restock history.
type StockService struct {
	productRepo repository.ProductRepository
	entryRepo   repository.StockEntryRepository
}

// NewStockService creates a new stock service
func NewStockService(productRepo repository.ProductRepository, entryRepo repository.StockEntryRepository) *StockService {
	return &StockService{productRepo: productRepo, entryRepo: entryRepo}
}

// Restock adds quantity units to the product and records the entry
func (s *StockService) Restock(ctx context.Context, productID uuid.UUID, quantity int) (*entity.StockEntry, error) {
	if quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Printf("Error loading product %s: %v", productID, err)
		return nil, apperror.NewBackendError("load product", err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.IncrementStock(ctx, productID, quantity); err != nil {
		log.Printf("Error incrementing stock for product %s: %v", productID, err)
		return nil, apperror.NewBackendError("update stock", err)
	}

	entry := &entity.StockEntry{ProductID: productID, Quantity: quantity}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		// The increment already landed; the history just misses a row.
		log.Printf("Error recording stock entry for product %s: %v", productID, err)
		return nil, apperror.NewBackendError("record stock entry", err)
	}
	return entry, nil
}

// ProductReceivedTotal sums the restocked quantity for one product.
type ProductReceivedTotal struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
}

// ReceivedTotals aggregates restock history into per-product totals,
// honoring the same filters as ListEntries.
func (s *StockService) ReceivedTotals(ctx context.Context, params *repository.StockEntryFilterParams) ([]ProductReceivedTotal, error) {
	entries, err := s.ListEntries(ctx, params)
	if err != nil {
		return nil, err
	}

	index := make(map[uuid.UUID]int)
	totals := []ProductReceivedTotal{}
	for _, entry := range entries {
		if i, ok := index[entry.ProductID]; ok {
			totals[i].Quantity += entry.Quantity
			continue
		}
		index[entry.ProductID] = len(totals)
		totals = append(totals, ProductReceivedTotal{
			ProductID:   entry.ProductID,
			ProductName: entry.Product.Title,
			Quantity:    entry.Quantity,
		})
	}
	return totals, nil
}

// ListEntries returns restock history, newest first, optionally
// filtered by product and date range.
func (s *StockService) ListEntries(ctx context.Context, params *repository.StockEntryFilterParams) ([]entity.StockEntry, error) {
	entries, err := s.entryRepo.List(ctx, params)
	if err != nil {
		log.Printf("Error listing stock entries: %v", err)
		return nil, apperror.NewBackendError("list stock entries", err)
	}
	if entries == nil {
		entries = []entity.StockEntry{}
	}
	return entries, nil
}
