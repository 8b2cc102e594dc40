package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/google/uuid"
)

// Settlement step names reported on partial failure.
const (
	StepRecordSale     = "record_sale"
	StepDecrementStock = "decrement_stock"
)

// Compensation is a recorded undo action for a settlement step that
// already took effect. Compensations are collected but never run
// automatically; a failed settlement reports them so an operator or a
// future recovery job can apply them.
type Compensation struct {
	Name string
	Run  func(ctx context.Context) error
}

// SettlementResult describes how far a settlement got. SaleRecorded
// with a non-empty FailedStep means the sale exists but some stock
// decrements did not apply.
type SettlementResult struct {
	TableNumber   int            `json:"table_number"`
	SaleID        uuid.UUID      `json:"sale_id,omitempty"`
	SaleRecorded  bool           `json:"sale_recorded"`
	Total         int64          `json:"total"`
	StockApplied  []uuid.UUID    `json:"stock_applied,omitempty"`
	FailedStep    string         `json:"failed_step,omitempty"`
	Compensations []Compensation `json:"-"`
}

// BatchSettlementResult summarizes a settle-all run.
type BatchSettlementResult struct {
	Attempted int            `json:"attempted"`
	Settled   int            `json:"settled"`
	Failures  map[int]string `json:"failures,omitempty"`
}

// SettlementService turns a table's pending order into a recorded sale.
// The sale row is written first; stock decrements follow one product at
// a time. A table being settled is marked busy so a concurrent attempt
// is rejected instead of producing a duplicate sale.
type SettlementService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	ledger      *LedgerService

	mu   sync.Mutex
	busy map[int]bool
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	ledger *LedgerService,
) *SettlementService {
	return &SettlementService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		ledger:      ledger,
		busy:        make(map[int]bool),
	}
}

func (s *SettlementService) begin(table int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[table] {
		return false
	}
	s.busy[table] = true
	return true
}

func (s *SettlementService) end(table int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, table)
}

// SettleTable settles the table's pending order as a sale attributed to
// userID. Stock is not re-validated against the cart; quantities are
// decremented as-is and may drive stock negative when concurrent sales
// raced over the same product.
//
// On failure the ledger is left untouched so the attempt can be
// retried. A failure after the sale row was written leaves the recorded
// sale in place; the result names the failed step and carries the
// compensations for the stock decrements that did apply.
func (s *SettlementService) SettleTable(ctx context.Context, table int, userID uuid.UUID) (*SettlementResult, error) {
	if userID == uuid.Nil {
		return nil, apperror.ErrUnauthorized
	}

	if !s.begin(table) {
		return nil, apperror.ErrTableBusy
	}
	defer s.end(table)

	order, err := s.ledger.GetOrder(ctx, table)
	if err != nil {
		return nil, err
	}
	if order.IsEmpty() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Table %d has no pending order", table))
	}

	result := &SettlementResult{TableNumber: table, Total: order.Total}

	sale := &entity.Sale{
		UserID: userID,
		Total:  order.Total,
	}
	for _, line := range order.Lines {
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Title,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
			Total:       line.LineTotal(),
		})
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		log.Printf("Error recording sale for table %d: %v", table, err)
		result.FailedStep = StepRecordSale
		return result, apperror.NewBackendError("record sale", err)
	}
	result.SaleID = sale.ID
	result.SaleRecorded = true

	for _, line := range order.Lines {
		if err := s.productRepo.DecrementStock(ctx, line.Product.ID, line.Quantity); err != nil {
			log.Printf("Error decrementing stock for product %s after sale %s: %v", line.Product.ID, sale.ID, err)
			result.FailedStep = StepDecrementStock
			return result, apperror.NewBackendError("update stock", err)
		}
		result.StockApplied = append(result.StockApplied, line.Product.ID)

		productID := line.Product.ID
		quantity := line.Quantity
		result.Compensations = append(result.Compensations, Compensation{
			Name: fmt.Sprintf("restore_stock:%s", line.Product.Title),
			Run: func(ctx context.Context) error {
				return s.productRepo.IncrementStock(ctx, productID, quantity)
			},
		})
	}

	if err := s.ledger.ClearTable(ctx, table); err != nil {
		return result, err
	}

	return result, nil
}

// SettleAll settles every table with a pending order, one table at a
// time in ascending order. Failures do not stop the run; each failed
// table keeps its ledger entry and is reported alongside the counts.
func (s *SettlementService) SettleAll(ctx context.Context, userID uuid.UUID) (*BatchSettlementResult, error) {
	if userID == uuid.Nil {
		return nil, apperror.ErrUnauthorized
	}

	pending := s.ledger.PendingOrders()

	tables := make([]int, 0, len(pending))
	for table := range pending {
		tables = append(tables, table)
	}
	sort.Ints(tables)

	result := &BatchSettlementResult{
		Attempted: len(tables),
		Failures:  make(map[int]string),
	}
	for _, table := range tables {
		if _, err := s.SettleTable(ctx, table, userID); err != nil {
			result.Failures[table] = err.Error()
			continue
		}
		result.Settled++
	}
	if len(result.Failures) == 0 {
		result.Failures = nil
	}
	return result, nil
}
