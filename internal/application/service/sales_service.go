package service

import (
	"context"
	"log"
	"time"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/google/uuid"
)

// DailySalesReport aggregates one business day of sales.
type DailySalesReport struct {
	Date      string `json:"date"`
	SaleCount int    `json:"sale_count"`
	ItemCount int    `json:"item_count"`
	Revenue   int64  `json:"revenue"`
}

// SalesService reads back recorded sales for the history screen and the
// daily report. Days are bucketed in the configured report timezone,
// not UTC, so a late-night sale lands on the business day it belongs to.
type SalesService struct {
	saleRepo repository.SaleRepository
	loc      *time.Location
}

// NewSalesService creates a new sales service
func NewSalesService(saleRepo repository.SaleRepository, loc *time.Location) *SalesService {
	if loc == nil {
		loc = time.UTC
	}
	return &SalesService{saleRepo: saleRepo, loc: loc}
}

// dayRange returns the [start, end) window of the day containing t in
// the report timezone.
func (s *SalesService) dayRange(t time.Time) (time.Time, time.Time) {
	local := t.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay parses a YYYY-MM-DD date in the report timezone.
func (s *SalesService) ParseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", value, s.loc)
	if err != nil {
		return time.Time{}, apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
	}
	return day, nil
}

// ListByDay returns the sales recorded on the given day, newest first,
// items included. An empty day yields an empty slice.
func (s *SalesService) ListByDay(ctx context.Context, day time.Time) ([]entity.Sale, error) {
	from, to := s.dayRange(day)
	sales, err := s.saleRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		log.Printf("Error listing sales for %s: %v", from.Format("2006-01-02"), err)
		return nil, apperror.NewBackendError("list sales", err)
	}
	if sales == nil {
		sales = []entity.Sale{}
	}
	return sales, nil
}

// ReportForDay aggregates the day's sales into a single report. A day
// without sales reports zeroes rather than an error.
func (s *SalesService) ReportForDay(ctx context.Context, day time.Time) (*DailySalesReport, error) {
	sales, err := s.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	start, _ := s.dayRange(day)
	report := &DailySalesReport{Date: start.Format("2006-01-02")}
	for i := range sales {
		report.SaleCount++
		report.ItemCount += sales[i].ItemQuantity()
		report.Revenue += sales[i].Total
	}
	return report, nil
}

// GetSale returns one sale with its items.
func (s *SalesService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error loading sale %s: %v", id, err)
		return nil, apperror.NewBackendError("load sale", err)
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}
