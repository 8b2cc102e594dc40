package service

import (
	"context"
	"errors"
	"time"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/ledger"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/google/uuid"
)

// In-memory doubles for the repository interfaces. Failure injection is
// per-call via the err fields.

type memProductRepo struct {
	products     map[uuid.UUID]*entity.Product
	decrementErr map[uuid.UUID]error
	getErr       error
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	repo := &memProductRepo{
		products:     make(map[uuid.UUID]*entity.Product),
		decrementErr: make(map[uuid.UUID]error),
	}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.products[p.ID] = p
	}
	return repo
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.products[id], nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *memProductRepo) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.Stock > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.Stock <= p.MinStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, amount int) error {
	if err := r.decrementErr[id]; err != nil {
		return err
	}
	p, ok := r.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.Stock -= amount
	return nil
}

func (r *memProductRepo) IncrementStock(ctx context.Context, id uuid.UUID, amount int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.Stock += amount
	return nil
}

type memSettingsRepo struct {
	settings *entity.CompanySettings
	getErr   error
}

func (r *memSettingsRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.settings, nil
}

func (r *memSettingsRepo) Create(ctx context.Context, settings *entity.CompanySettings) error {
	r.settings = settings
	return nil
}

func (r *memSettingsRepo) Update(ctx context.Context, settings *entity.CompanySettings) error {
	r.settings = settings
	return nil
}

type memLedgerStore struct {
	initial   map[int]*ledger.TableOrder
	saved     map[int]*ledger.TableOrder
	saveCount int
	loadErr   error
	saveErr   error
}

func (s *memLedgerStore) Load() (map[int]*ledger.TableOrder, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.initial == nil {
		return map[int]*ledger.TableOrder{}, nil
	}
	return s.initial, nil
}

func (s *memLedgerStore) Save(orders map[int]*ledger.TableOrder) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	snapshot := make(map[int]*ledger.TableOrder, len(orders))
	for table, order := range orders {
		snapshot[table] = order.Clone()
	}
	s.saved = snapshot
	s.saveCount++
	return nil
}

type memSaleRepo struct {
	sales     []*entity.Sale
	createErr error
}

func (r *memSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedAt = time.Now()
	for i := range sale.Items {
		if sale.Items[i].ID == uuid.Nil {
			sale.Items[i].ID = uuid.New()
		}
		sale.Items[i].SaleID = sale.ID
	}
	r.sales = append(r.sales, sale)
	return nil
}

func (r *memSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	var out []entity.Sale
	for i := len(r.sales) - 1; i >= 0; i-- {
		s := r.sales[i]
		if !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			out = append(out, *s)
		}
	}
	return out, nil
}

type memStockEntryRepo struct {
	products  *memProductRepo
	entries   []entity.StockEntry
	createErr error
}

func (r *memStockEntryRepo) Create(ctx context.Context, entry *entity.StockEntry) error {
	if r.createErr != nil {
		return r.createErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memStockEntryRepo) List(ctx context.Context, params *repository.StockEntryFilterParams) ([]entity.StockEntry, error) {
	var out []entity.StockEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		entry := r.entries[i]
		if params != nil {
			if params.ProductID != nil && entry.ProductID != *params.ProductID {
				continue
			}
			if params.From != nil && entry.CreatedAt.Before(*params.From) {
				continue
			}
			if params.To != nil && !entry.CreatedAt.Before(*params.To) {
				continue
			}
		}
		if r.products != nil {
			if p := r.products.products[entry.ProductID]; p != nil {
				entry.Product = *p
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func newTestLedgerService(products *memProductRepo) (*LedgerService, *memLedgerStore) {
	store := &memLedgerStore{}
	svc, err := NewLedgerService(products, &memSettingsRepo{}, store)
	if err != nil {
		panic(err)
	}
	return svc, store
}
