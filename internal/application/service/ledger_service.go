package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/enum"
	"github.com/dcamacho/barkeep-api/internal/domain/ledger"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/google/uuid"
)

// LedgerService owns the per-table order ledger: cart mutations, total
// recomputation, and the table projection. State lives in memory and is
// written through to the ledger store after every mutation.
type LedgerService struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	store        repository.LedgerStore

	mu     sync.Mutex
	orders map[int]*ledger.TableOrder
}

// NewLedgerService creates a ledger service, restoring any persisted
// orders from the store.
func NewLedgerService(
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	store repository.LedgerStore,
) (*LedgerService, error) {
	orders, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		store:        store,
		orders:       orders,
	}, nil
}

// TableStatusView is one entry of the table selector projection.
type TableStatusView struct {
	Number    int              `json:"number"`
	Status    enum.TableStatus `json:"status"`
	ItemCount int              `json:"item_count"`
	Total     int64            `json:"total"`
}

// MaxTables returns the configured table count, falling back to the
// default when no settings row exists or the lookup fails.
func (s *LedgerService) MaxTables(ctx context.Context) int {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Printf("Warning: failed to load company settings, using default table count: %v", err)
		return entity.DefaultMaxTables
	}
	if settings == nil || settings.MaxTables < 1 {
		return entity.DefaultMaxTables
	}
	return settings.MaxTables
}

func (s *LedgerService) validateTable(ctx context.Context, table int) error {
	max := s.MaxTables(ctx)
	if table < 1 || table > max {
		return apperror.NewBadRequestError(fmt.Sprintf("Table number must be between 1 and %d", max))
	}
	return nil
}

// AddLine adds one unit of the product to the table's order. A new line
// starts at quantity 1 when stock allows; an existing line is
// incremented only while quantity + 1 stays within current stock.
// An increment that would exceed stock is silently ignored, matching
// the incremental check the sales screen applies while building a cart.
func (s *LedgerService) AddLine(ctx context.Context, table int, productID uuid.UUID) (*ledger.TableOrder, error) {
	if err := s.validateTable(ctx, table); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Printf("Error loading product %s: %v", productID, err)
		return nil, apperror.NewBackendError("load product", err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	order := s.orders[table]
	if order == nil {
		order = &ledger.TableOrder{TableNumber: table, CreatedAt: now}
	}

	if idx := order.FindLine(product.ID); idx >= 0 {
		if order.Lines[idx].Quantity+1 > product.Stock {
			// Over-stock increments are dropped without feedback.
			return order.Clone(), nil
		}
		order.Lines[idx].Quantity++
	} else {
		if product.Stock < 1 {
			return order.Clone(), nil
		}
		order.Lines = append(order.Lines, ledger.CartLine{
			Product: ledger.ProductSnapshot{
				ID:    product.ID,
				Title: product.Title,
				Price: product.Price,
				Stock: product.Stock,
			},
			Quantity: 1,
		})
	}

	order.RecomputeTotal()
	order.UpdatedAt = now
	s.orders[table] = order
	s.persist()

	return order.Clone(), nil
}

// SetLineQuantity replaces a line's quantity. Zero or negative removes
// the line. The quantity is not clamped against stock here; the caller
// is responsible for staying within availability.
func (s *LedgerService) SetLineQuantity(ctx context.Context, table int, productID uuid.UUID, quantity int) (*ledger.TableOrder, error) {
	if err := s.validateTable(ctx, table); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.orders[table]
	if order == nil {
		return &ledger.TableOrder{TableNumber: table}, nil
	}

	idx := order.FindLine(productID)
	if idx < 0 {
		return order.Clone(), nil
	}

	if quantity <= 0 {
		order.Lines = append(order.Lines[:idx], order.Lines[idx+1:]...)
	} else {
		order.Lines[idx].Quantity = quantity
	}

	order.RecomputeTotal()
	order.UpdatedAt = time.Now()
	s.persist()

	return order.Clone(), nil
}

// RemoveLine removes the product's line from the table's order.
func (s *LedgerService) RemoveLine(ctx context.Context, table int, productID uuid.UUID) (*ledger.TableOrder, error) {
	return s.SetLineQuantity(ctx, table, productID, 0)
}

// ClearTable removes the table's order entirely.
func (s *LedgerService) ClearTable(ctx context.Context, table int) error {
	if err := s.validateTable(ctx, table); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.orders, table)
	s.persist()
	return nil
}

// GetOrder returns the table's order, or an empty view when none
// exists. It never fails for a table within the configured range.
func (s *LedgerService) GetOrder(ctx context.Context, table int) (*ledger.TableOrder, error) {
	if err := s.validateTable(ctx, table); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if order := s.orders[table]; order != nil {
		return order.Clone(), nil
	}
	return &ledger.TableOrder{TableNumber: table}, nil
}

// PendingOrders returns a snapshot of every non-empty order keyed by
// table number.
func (s *LedgerService) PendingOrders() map[int]*ledger.TableOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make(map[int]*ledger.TableOrder)
	for table, order := range s.orders {
		if !order.IsEmpty() {
			pending[table] = order.Clone()
		}
	}
	return pending
}

// TableStatuses projects the ledger onto the configured tables. A table
// with an order that has no lines projects as empty; such an order is
// indistinguishable from an absent one.
func (s *LedgerService) TableStatuses(ctx context.Context, selected int) []TableStatusView {
	max := s.MaxTables(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]TableStatusView, 0, max)
	for table := 1; table <= max; table++ {
		view := TableStatusView{Number: table, Status: enum.TableStatusEmpty}
		if order := s.orders[table]; !order.IsEmpty() {
			view.Status = enum.TableStatusPending
			view.ItemCount = order.ItemCount()
			view.Total = order.Total
		}
		if table == selected {
			view.Status = enum.TableStatusSelected
		}
		statuses = append(statuses, view)
	}
	return statuses
}

// persist writes the current map through to the store. Must be called
// with the mutex held. Persistence failures keep the in-memory mutation
// and are logged; the next successful write repairs the file.
func (s *LedgerService) persist() {
	if err := s.store.Save(s.orders); err != nil {
		log.Printf("Warning: failed to persist table orders: %v", err)
	}
}
